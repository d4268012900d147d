package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/zsoltkebel/relica/pkg/client"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored credential pair from the OS keyring",
	Run:   runLogout,
}

func runLogout(cmd *cobra.Command, args []string) {
	cfg, err := GetConfig(cmd)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	baseURL := cfg.GetString(client.BaseUrlKey)

	if err := client.DeleteCredentials(baseURL); err != nil {
		log.Fatalf("failed to remove credentials from keyring: %v", err)
	}
	fmt.Printf("Credentials removed for %s\n", baseURL)
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
