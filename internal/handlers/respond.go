package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/sociogram/internal/errs"
)

// writeError maps a service failure onto the wire. Status-coded errors
// carry their own code and message as a JSON string literal; anything else
// is a persistence or lookup fault surfaced as a generic 500.
func writeError(c *gin.Context, err error) {
	var coded *errs.Error
	if errors.As(err, &coded) {
		c.JSON(coded.Status, coded.Message)
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
