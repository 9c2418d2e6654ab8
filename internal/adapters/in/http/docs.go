package http

import (
	"encoding/json"
	"net/http"

	"coffeeshop/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// openAPIDoc hands the embedded OpenAPI document to the swagger UI.
type openAPIDoc struct{}

func (openAPIDoc) ReadDoc() string {
	data, err := specJSON()
	if err != nil {
		return "{}"
	}
	return string(data)
}

func init() {
	swag.Register(swag.Name, openAPIDoc{})
}

func specJSON() ([]byte, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	return json.Marshal(swagger)
}

// registerDocs serves the raw document at /openapi.json and the swagger UI
// under /swagger/.
func registerDocs(e *echo.Echo) {
	e.GET("/openapi.json", func(c echo.Context) error {
		data, err := specJSON()
		if err != nil {
			return err
		}
		return c.JSONBlob(http.StatusOK, data)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
