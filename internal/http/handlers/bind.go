package handlers

import (
	"bytes"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindBody decodes the JSON body into obj. An empty body leaves obj untouched.
func bindBody(c *gin.Context, obj any) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return binding.JSON.BindBody(body, obj)
}
