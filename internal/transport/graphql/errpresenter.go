package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
	"github.com/heartmarshall/skilltracker-backend/pkg/ctxutil"
)

// Extension codes reported in errors[].extensions.code.
const (
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeConflict      = "CONFLICT"
	CodeValidation    = "VALIDATION"
	CodeInternal      = "INTERNAL"
)

// Error is a client-facing GraphQL error. The runtime copies Extensions()
// into the response.
type Error struct {
	Message string
	Code    string
	Fields  []domain.FieldError
}

func (e *Error) Error() string { return e.Message }

// Extensions implements the graphql-go extensions hook.
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	if len(e.Fields) > 0 {
		fields := make([]map[string]string, len(e.Fields))
		for i, f := range e.Fields {
			fields[i] = map[string]string{"field": f.Field, "message": f.Message}
		}
		ext["fields"] = fields
	}
	return ext
}

// ErrorPresenter converts an error returned by a service into the error a
// resolver hands back to the GraphQL runtime.
type ErrorPresenter func(ctx context.Context, err error) error

// NewErrorPresenter returns an ErrorPresenter that maps domain errors
// to GraphQL error codes.
func NewErrorPresenter(log *slog.Logger) ErrorPresenter {
	return func(ctx context.Context, err error) error {
		if err == nil {
			return nil
		}

		var already *Error
		if errors.As(err, &already) {
			return already
		}

		gqlErr := &Error{Message: clientMessage(err)}

		switch {
		case errors.Is(err, domain.ErrNotFound):
			gqlErr.Code = CodeNotFound

		case errors.Is(err, domain.ErrAlreadyExists):
			gqlErr.Code = CodeAlreadyExists

		case errors.Is(err, domain.ErrValidation):
			gqlErr.Code = CodeValidation
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				gqlErr.Fields = ve.Errors
			}

		case errors.Is(err, domain.ErrConflict):
			gqlErr.Code = CodeConflict

		default:
			// Unexpected error - log it, return generic message to client
			requestID := ctxutil.RequestIDFromCtx(ctx)
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", err.Error()),
				slog.String("request_id", requestID),
			)
			gqlErr.Message = "internal error"
			gqlErr.Code = CodeInternal
		}

		return gqlErr
	}
}

// clientMessage prefers the message of a domain.Error anywhere in the chain.
func clientMessage(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
