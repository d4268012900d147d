package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	createMetadataFile string
	createImages       []string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new artifact",
	Long: `Create a new artifact from a metadata JSON file and local image files.

Examples:
	relicactl create --metadata vase.json --image front.jpg --image back.jpg`,
	Run: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) {
	c, err := newClient(cmd)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	metadata := ""
	if createMetadataFile != "" {
		raw, err := os.ReadFile(createMetadataFile)
		if err != nil {
			log.Fatalf("failed to read metadata file: %v", err)
		}
		metadata = string(raw)
	}

	id, err := c.Create(cmd.Context(), metadata, createImages)
	if err != nil {
		log.Fatalf("failed to create artifact: %v", err)
	}
	fmt.Printf("Created %s\n", id)
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createMetadataFile, "metadata", "m", "", "Path to a metadata JSON file")
	createCmd.Flags().StringArrayVarP(&createImages, "image", "i", nil, "Image file to upload (repeatable)")
}
