// Package docs embeds the OpenAPI document of the HTTP API and registers it with swag,
// which is where the /swagger UI reads it from.
package docs

import (
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIYAML []byte

var (
	loadOnce sync.Once
	loaded   *openapi3.T
	loadErr  error
)

// Spec parses and validates the embedded document. The result is cached.
func Spec() (*openapi3.T, error) {
	loadOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(openAPIYAML)
		if err != nil {
			loadErr = err
			return
		}
		if err = doc.Validate(loader.Context); err != nil {
			loadErr = err
			return
		}
		loaded = doc
	})
	return loaded, loadErr
}

type swaggerDoc struct{}

// ReadDoc serves the document as JSON, the form swagger UI fetches.
func (swaggerDoc) ReadDoc() string {
	doc, err := Spec()
	if err != nil {
		return "{}"
	}
	data, err := doc.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(data)
}

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}
