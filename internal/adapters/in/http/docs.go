package http

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// openAPIDoc serves the OpenAPI document as JSON to the swagger UI.
type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

// RegisterDocs publishes doc under the default swag instance read by echo-swagger.
func RegisterDocs(doc *openapi3.T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	swag.Register(swag.Name, openAPIDoc{json: string(data)})
	return nil
}
