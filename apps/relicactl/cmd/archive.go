package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <artifact-id>",
	Short: "Export an artifact's storage tree to the server's S3 target",
	Args:  cobra.ExactArgs(1),
	Run:   runArchive,
}

func runArchive(cmd *cobra.Command, args []string) {
	c, err := newClient(cmd)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	files, err := c.Archive(cmd.Context(), args[0])
	if err != nil {
		log.Fatalf("failed to archive artifact: %v", err)
	}
	fmt.Printf("Archived %s (%d files)\n", args[0], files)
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}
