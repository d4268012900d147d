package routes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/zsoltkebel/relica/pkg/webapi/schemas"
	"github.com/zsoltkebel/relica/pkg/webapi/services"
)

// ListArtifactsOutput is the response for listing artifacts
type ListArtifactsOutput struct {
	Body schemas.ArtifactList
}

// GetArtifactInput identifies one artifact
type GetArtifactInput struct {
	ArtifactID string `path:"artifact_id" pattern:"^[\\w\\-]+$" doc:"Artifact identifier"`
}

// GetArtifactOutput is the response for fetching one artifact
type GetArtifactOutput struct {
	Body schemas.ArtifactDetail
}

// RegisterArtifacts registers the public read-only artifact routes.
func RegisterArtifacts(api huma.API, svcs *services.Services) {
	huma.Register(api, huma.Operation{
		OperationID: "list-artifacts",
		Method:      http.MethodGet,
		Path:        "/artifacts",
		Summary:     "List artifacts",
		Description: "Returns a preview of every readable artifact. Entries with missing or malformed metadata are skipped.",
		Tags:        []string{"Artifacts"},
	}, func(ctx context.Context, input *struct{}) (*ListArtifactsOutput, error) {
		resp := &ListArtifactsOutput{}
		resp.Body.Artifacts = svcs.Artifacts.List(ctx)
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-artifact",
		Method:      http.MethodGet,
		Path:        "/artifacts/{artifact_id}",
		Summary:     "Get one artifact",
		Description: "Returns the full aggregated view: metadata document, image URLs and relightable media.",
		Tags:        []string{"Artifacts"},
	}, func(ctx context.Context, input *GetArtifactInput) (*GetArtifactOutput, error) {
		detail, err := svcs.Artifacts.Detail(input.ArtifactID)
		if err != nil {
			return nil, translate(err)
		}
		resp := &GetArtifactOutput{}
		resp.Body.Artifact = detail
		return resp, nil
	})
}
