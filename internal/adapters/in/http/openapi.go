package http

import (
	_ "embed"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yml
var openAPISource []byte

var (
	openAPIOnce sync.Once
	openAPIDoc  *openapi3.T
	openAPIErr  error
)

// loadOpenAPIDoc parses the embedded contract once and validates it so a
// broken spec surfaces on first request instead of silently serving garbage.
func loadOpenAPIDoc() (*openapi3.T, error) {
	openAPIOnce.Do(func() {
		loader := openapi3.NewLoader()
		openAPIDoc, openAPIErr = loader.LoadFromData(openAPISource)
		if openAPIErr == nil {
			openAPIErr = openAPIDoc.Validate(loader.Context)
		}
	})
	return openAPIDoc, openAPIErr
}

// OpenAPISpec handles GET /openapi.json, serving the API contract as JSON.
func (s *Server) OpenAPISpec(ctx echo.Context) error {
	doc, err := loadOpenAPIDoc()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "api specification is unavailable",
		})
	}
	return ctx.JSON(http.StatusOK, doc)
}
