package cmd

import (
	"fmt"
	"log"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zsoltkebel/relica/pkg/client"
)

var loginUsername string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the server credential pair in the OS keyring",
	Long: `Prompt for the shared API password and store the credential pair in the
OS keyring, keyed by the configured server base URL.

Examples:
	relicactl login --username curator`,
	Run: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) {
	cfg, err := GetConfig(cmd)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	baseURL := cfg.GetString(client.BaseUrlKey)

	username := loginUsername
	if username == "" {
		username = cfg.GetString(client.UsernameKey)
	}
	if username == "" {
		log.Fatal("no username: pass --username or set it in relica.yaml")
	}

	fmt.Fprintf(os.Stderr, "Password for %s@%s: ", username, baseURL)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.Fatalf("failed to read password: %v", err)
	}

	if err := client.SaveCredentials(baseURL, username, string(password)); err != nil {
		log.Fatalf("failed to save credentials to keyring: %v", err)
	}
	fmt.Println("Credentials saved")
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "API username")
}
