package controller

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	oapiMW "github.com/oapi-codegen/nethttp-middleware"
)

// ValidationErrorFunc writes the response of a request the OpenAPI document rejects.
type ValidationErrorFunc func(w http.ResponseWriter, message string, statusCode int)

// WithRequestValidation returns a middleware validating requests against the
// OpenAPI document in spec. Authentication is left to the handlers.
func WithRequestValidation(ctx context.Context, spec []byte,
	onError ValidationErrorFunc) (func(http.Handler) http.Handler, error) {
	doc, err := openapi3.NewLoader().LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("could not load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	// servers are dropped so that host and base path are never matched
	doc.Servers = nil

	return oapiMW.OapiRequestValidatorWithOptions(doc, &oapiMW.Options{
		Options: openapi3filter.Options{
			AuthenticationFunc: func(context.Context, *openapi3filter.AuthenticationInput) error {
				return nil
			},
		},
		ErrorHandler: oapiMW.ErrorHandler(onError),
	}), nil
}
