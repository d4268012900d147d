package routes

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/zsoltkebel/relica/pkg/artstore"
	"github.com/zsoltkebel/relica/pkg/webapi/services"
)

// translate maps store error codes onto HTTP status errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, services.ErrArchiveDisabled):
		return huma.Error503ServiceUnavailable("archive target not configured")
	case artstore.IsCode(err, artstore.CodeNotFound):
		return huma.Error404NotFound(err.Error())
	case artstore.IsCode(err, artstore.CodeInvalidInput):
		return huma.Error400BadRequest(err.Error())
	case artstore.IsCode(err, artstore.CodeConflict):
		return huma.Error409Conflict(err.Error())
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}
