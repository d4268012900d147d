package routes

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/zsoltkebel/relica/pkg/artstore"
	"github.com/zsoltkebel/relica/pkg/webapi/schemas"
	"github.com/zsoltkebel/relica/pkg/webapi/services"
)

// CreateArtifactInput carries the multipart create form. RTI file fields are
// named by the client (listed under RTIKeys), so the raw form is used
// instead of a typed body.
type CreateArtifactInput struct {
	RawBody multipart.Form
}

// CreateArtifactOutput acknowledges artifact creation
type CreateArtifactOutput struct {
	Body schemas.ArtifactMutation
}

// UpdateArtifactInput carries the multipart update form for one artifact
type UpdateArtifactInput struct {
	ArtifactID string `path:"artifact_id" pattern:"^[\\w\\-]+$" doc:"Artifact identifier"`
	RawBody    multipart.Form
}

// DeleteArtifactInput identifies the artifact to delete
type DeleteArtifactInput struct {
	ArtifactID string `path:"artifact_id" pattern:"^[\\w\\-]+$" doc:"Artifact identifier"`
}

// UploadRTIInput carries the multipart files of one new RTI set
type UploadRTIInput struct {
	ArtifactID string `path:"artifact_id" pattern:"^[\\w\\-]+$" doc:"Artifact identifier"`
	RawBody    multipart.Form
}

// UploadRTIOutput acknowledges RTI set creation
type UploadRTIOutput struct {
	Body schemas.RTICreated
}

// DeleteRTIInput identifies the RTI set to delete
type DeleteRTIInput struct {
	ArtifactID string `path:"artifact_id" pattern:"^[\\w\\-]+$" doc:"Artifact identifier"`
	RTIID      string `path:"rti_id" pattern:"^[\\w\\-]+$" doc:"RTI set identifier"`
}

// DeleteRTIOutput acknowledges RTI set removal
type DeleteRTIOutput struct {
	Body schemas.RTIDeleted
}

// ArchiveArtifactInput identifies the artifact to export
type ArchiveArtifactInput struct {
	ArtifactID string `path:"artifact_id" pattern:"^[\\w\\-]+$" doc:"Artifact identifier"`
}

// ArchiveArtifactOutput reports the export result
type ArchiveArtifactOutput struct {
	Body schemas.ArchiveResult
}

// facetsFromForm extracts the optional artifact facets from a multipart
// form. A facet left out of the form stays nil, which downstream means
// "leave this sub-resource untouched"; a present facet triggers a full
// replace.
func facetsFromForm(form multipart.Form) (metadata *string, images []artstore.Upload, rtis map[string][]artstore.Upload) {
	if vals, ok := form.Value["metadata"]; ok && len(vals) > 0 {
		metadata = &vals[0]
	}
	if headers, ok := form.File["images"]; ok {
		images = artstore.FromMultipart(headers)
	}
	if keys, ok := form.Value["RTIKeys"]; ok {
		rtis = map[string][]artstore.Upload{}
		for _, key := range keys {
			rtis[key] = artstore.FromMultipart(form.File[key])
		}
	}
	return metadata, images, rtis
}

// allRTIFiles flattens every file field of the form into one upload batch.
func allRTIFiles(form multipart.Form) []artstore.Upload {
	uploads := []artstore.Upload{}
	for _, headers := range form.File {
		uploads = append(uploads, artstore.FromMultipart(headers)...)
	}
	return uploads
}

// RegisterAdmin registers the mutating artifact routes behind the
// basic-auth middleware.
func RegisterAdmin(api huma.API, svcs *services.Services, auth func(huma.Context, func(huma.Context))) {
	security := []map[string][]string{{"basic": {}}}

	huma.Register(api, huma.Operation{
		OperationID: "create-artifact",
		Method:      http.MethodPost,
		Path:        "/artifacts",
		Summary:     "Create an artifact",
		Description: "Creates a new artifact from an optional metadata JSON string, optional images and optional RTI file fields named by RTIKeys.",
		Tags:        []string{"Admin"},
		Security:    security,
		Middlewares: huma.Middlewares{auth},
	}, func(ctx context.Context, input *CreateArtifactInput) (*CreateArtifactOutput, error) {
		metadata, images, rtis := facetsFromForm(input.RawBody)
		id, err := svcs.Artifacts.Create(ctx, metadata, images, rtis)
		if err != nil {
			return nil, translate(err)
		}
		resp := &CreateArtifactOutput{}
		resp.Body.ArtifactID = id
		resp.Body.Message = "Upload successful"
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-artifact",
		Method:      http.MethodPut,
		Path:        "/artifacts/{artifact_id}",
		Summary:     "Update an artifact",
		Description: "Replaces each facet present in the form: metadata overwrite, full image replacement, full RTI replacement. Omitted facets are untouched.",
		Tags:        []string{"Admin"},
		Security:    security,
		Middlewares: huma.Middlewares{auth},
	}, func(ctx context.Context, input *UpdateArtifactInput) (*CreateArtifactOutput, error) {
		metadata, images, rtis := facetsFromForm(input.RawBody)
		if err := svcs.Artifacts.Update(ctx, input.ArtifactID, metadata, images, rtis); err != nil {
			return nil, translate(err)
		}
		resp := &CreateArtifactOutput{}
		resp.Body.ArtifactID = input.ArtifactID
		resp.Body.Message = "Upload successful"
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-artifact",
		Method:      http.MethodDelete,
		Path:        "/artifacts/{artifact_id}",
		Summary:     "Delete an artifact",
		Description: "Removes the artifact and all of its images and RTI sets.",
		Tags:        []string{"Admin"},
		Security:    security,
		Middlewares: huma.Middlewares{auth},
	}, func(ctx context.Context, input *DeleteArtifactInput) (*CreateArtifactOutput, error) {
		if err := svcs.Artifacts.Delete(ctx, input.ArtifactID); err != nil {
			return nil, translate(err)
		}
		resp := &CreateArtifactOutput{}
		resp.Body.ArtifactID = input.ArtifactID
		resp.Body.Message = "Deleted successful"
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "upload-rti",
		Method:      http.MethodPost,
		Path:        "/artifacts/{artifact_id}/rti",
		Summary:     "Add an RTI set",
		Description: "Creates one new RTI set from the uploaded files. Include info.json or the set stays invisible to readers.",
		Tags:        []string{"Admin"},
		Security:    security,
		Middlewares: huma.Middlewares{auth},
	}, func(ctx context.Context, input *UploadRTIInput) (*UploadRTIOutput, error) {
		rtiID, err := svcs.Artifacts.CreateRTI(ctx, input.ArtifactID, allRTIFiles(input.RawBody))
		if err != nil {
			return nil, translate(err)
		}
		resp := &UploadRTIOutput{}
		resp.Body.ArtifactID = input.ArtifactID
		resp.Body.RTIID = rtiID
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-rti",
		Method:      http.MethodDelete,
		Path:        "/artifacts/{artifact_id}/rti/{rti_id}",
		Summary:     "Delete an RTI set",
		Tags:        []string{"Admin"},
		Security:    security,
		Middlewares: huma.Middlewares{auth},
	}, func(ctx context.Context, input *DeleteRTIInput) (*DeleteRTIOutput, error) {
		if err := svcs.Artifacts.DeleteRTI(ctx, input.ArtifactID, input.RTIID); err != nil {
			return nil, translate(err)
		}
		resp := &DeleteRTIOutput{}
		resp.Body.ArtifactID = input.ArtifactID
		resp.Body.RTIID = input.RTIID
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "archive-artifact",
		Method:      http.MethodPost,
		Path:        "/artifacts/{artifact_id}/archive",
		Summary:     "Archive an artifact",
		Description: "Exports the artifact's storage tree to the configured S3-compatible target.",
		Tags:        []string{"Admin"},
		Security:    security,
		Middlewares: huma.Middlewares{auth},
	}, func(ctx context.Context, input *ArchiveArtifactInput) (*ArchiveArtifactOutput, error) {
		count, err := svcs.Artifacts.Archive(ctx, input.ArtifactID)
		if err != nil {
			return nil, translate(err)
		}
		resp := &ArchiveArtifactOutput{}
		resp.Body.ArtifactID = input.ArtifactID
		resp.Body.Files = count
		return resp, nil
	})
}

// RegisterAll wires every route group onto the API.
func RegisterAll(api huma.API, svcs *services.Services, auth func(huma.Context, func(huma.Context))) {
	RegisterIndex(api)
	RegisterArtifacts(api, svcs)
	RegisterAdmin(api, svcs, auth)
}
