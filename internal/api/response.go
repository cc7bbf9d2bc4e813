package api

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any            `json:"data,omitempty"`
	Error *Error         `json:"error,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
}

func respond(c *gin.Context, status int, data any, meta map[string]any) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, Envelope{Data: data, Meta: meta})
}

func fail(c *gin.Context, err error) {
	apiErr := FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.AbortWithStatusJSON(apiErr.Status, Envelope{Error: apiErr})
}
