package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/zsoltkebel/relica/pkg/rlog"
	"github.com/zsoltkebel/relica/pkg/webapi"
	"github.com/zsoltkebel/relica/pkg/webapi/config"
	"github.com/zsoltkebel/relica/pkg/webapi/routes"
	"github.com/zsoltkebel/relica/pkg/webapi/services"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the artifact API server",
	Long: `Start the HTTP server: public read endpoints for artifact listings and
details, basic-auth gated mutation endpoints, and the static file mount for
the raw storage tree.`,
	Run: serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, args []string) {
	cfg, err := config.ValidateEnv()
	if err != nil {
		log.Fatalf("❌ %v\n", err)
	}

	cfg.Print(log.Printf)

	logger := rlog.NewDefault()

	svcs, err := services.NewServices(cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize services: %v", err)
	}
	defer svcs.Close()

	username, password, configured := cfg.Credentials()
	if !configured {
		logger.Warn("API_USERNAME/API_PASSWORD not set, all mutation attempts will be rejected")
	}
	guard := webapi.NewGuard(username, password, configured, logger)

	api := webapi.NewApi(cfg)
	routes.RegisterAll(api.Api, svcs, guard.Middleware(api.Api))

	addr := fmt.Sprintf(":%s", cfg.Port)

	log.Printf("🚀 Artifact server starting on %s\n", addr)
	log.Printf("📚 OpenAPI docs: %s/docs\n", cfg.BaseURL)
	log.Printf("📄 OpenAPI spec: %s/openapi.json\n", cfg.BaseURL)
	log.Printf("🗂  Storage tree: %s%s\n", cfg.BaseURL, cfg.PublicPrefix)

	if err := http.ListenAndServe(addr, api.Router); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
