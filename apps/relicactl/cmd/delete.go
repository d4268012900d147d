package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <artifact-id>",
	Short: "Delete an artifact and everything under it",
	Args:  cobra.ExactArgs(1),
	Run:   runDelete,
}

func runDelete(cmd *cobra.Command, args []string) {
	c, err := newClient(cmd)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	if err := c.Delete(cmd.Context(), args[0]); err != nil {
		log.Fatalf("failed to delete artifact: %v", err)
	}
	fmt.Printf("Deleted %s\n", args[0])
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
