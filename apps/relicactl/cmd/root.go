package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/zsoltkebel/relica/pkg/client"
)

type contextKey string

const configContextKey contextKey = "relicaconfig"

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "relicactl",
		Short: "CLI for administering a relica artifact server",
		Long: `relicactl is a small command-line tool for administering a running
relica artifact server. Use login to store the shared credential pair in the
OS keyring, then list, get, create, delete and archive artifacts.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := client.LoadConfig(cfgFile)
			if err != nil {
				return err
			}

			if err := cfg.Viper().BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			ctx := context.WithValue(cmd.Context(), configContextKey, cfg)
			cmd.SetContext(ctx)

			return nil
		},
	}
)

// GetConfig retrieves the Config from the command context
func GetConfig(cmd *cobra.Command) (*client.Config, error) {
	ctx := cmd.Context()
	cfg, ok := ctx.Value(configContextKey).(*client.Config)
	if !ok {
		return nil, errors.New("no config in context")
	}
	return cfg, nil
}

// newClient builds an API client for the configured server, attaching
// keyring credentials when present.
func newClient(cmd *cobra.Command) (*client.Client, error) {
	cfg, err := GetConfig(cmd)
	if err != nil {
		return nil, err
	}
	baseURL := cfg.GetString(client.BaseUrlKey)
	c, err := client.New(baseURL)
	if err != nil {
		return nil, err
	}
	if user, pass, err := client.LoadCredentials(baseURL); err == nil {
		c.SetBasicAuth(user, pass)
	}
	return c, nil
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default relica.yaml)")
}
