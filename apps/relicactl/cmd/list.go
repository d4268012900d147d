package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List artifacts on the server",
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	c, err := newClient(cmd)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	previews, err := c.List(cmd.Context())
	if err != nil {
		log.Fatalf("failed to list artifacts: %v", err)
	}

	if len(previews) == 0 {
		fmt.Println("No artifacts")
		return
	}
	for _, p := range previews {
		title := p.Title
		if title == "" {
			title = "<untitled>"
		}
		fmt.Printf("%s  %s\n", p.ID, title)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
