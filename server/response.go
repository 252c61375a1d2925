package server

import (
	"log"
	"net/http"

	"roll-point/services"

	"github.com/gin-gonic/gin"
)

// ok writes a success payload, merging extra fields into the body.
func ok(c *gin.Context, message string, extra gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// fail writes a structured failure payload with a status derived from the
// error kind. Unclassified errors are logged and surfaced generically.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch services.KindOf(err) {
	case services.KindValidation:
		status, message = http.StatusBadRequest, err.Error()
	case services.KindNotFound:
		status, message = http.StatusNotFound, err.Error()
	case services.KindConflict:
		status, message = http.StatusConflict, err.Error()
	case services.KindAuth:
		status, message = http.StatusUnauthorized, err.Error()
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	c.JSON(status, gin.H{"success": false, "message": message})
}

// failBinding surfaces a malformed or incomplete request body.
func failBinding(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": services.ErrMissingFields.Message,
	})
}
