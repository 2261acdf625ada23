package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Created writes a 201 Created JSON response.
func Created(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusCreated, payload)
}

// Blob writes raw bytes. When filename is set the response is an attachment.
func Blob(c *gin.Context, contentType, filename string, data []byte) {
	if filename != "" {
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	} else {
		c.Header("Content-Disposition", "inline")
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, contentType, data)
}
