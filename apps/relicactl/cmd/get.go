package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <artifact-id>",
	Short: "Fetch the full view of one artifact",
	Args:  cobra.ExactArgs(1),
	Run:   runGet,
}

func runGet(cmd *cobra.Command, args []string) {
	c, err := newClient(cmd)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	artifact, err := c.Get(cmd.Context(), args[0])
	if err != nil {
		log.Fatalf("failed to fetch artifact: %v", err)
	}

	out, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		log.Fatalf("failed to render artifact: %v", err)
	}
	fmt.Println(string(out))
}

func init() {
	rootCmd.AddCommand(getCmd)
}
