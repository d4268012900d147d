// Package webapi wires the artifact store into an HTTP API: chi router,
// huma operations, CORS, basic-auth gate and the static file mount for the
// raw storage tree.
package webapi

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/zsoltkebel/relica/pkg/webapi/config"
)

type Api struct {
	Api    huma.API
	Router *chi.Mux
}

func NewApi(cfg *config.EnvConfig) *Api {
	router := chi.NewMux()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	humaConfig := huma.DefaultConfig("relica", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"basic": {
			Type:        "http",
			Scheme:      "basic",
			Description: "Shared credential pair for mutating endpoints",
		},
	}

	api := humachi.New(router, humaConfig)

	// Serve the raw storage tree read-only under the public prefix. The
	// aggregator's URL building must stay in lock-step with this mount.
	fileServer := http.StripPrefix(cfg.PublicPrefix, http.FileServer(http.Dir(cfg.StorageRoot)))
	router.Handle(cfg.PublicPrefix+"/*", fileServer)

	return &Api{Api: api, Router: router}
}
