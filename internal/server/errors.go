package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/td0m/pomoplan/pkg/task"
)

// statusOf maps an error to the response code.
func statusOf(err error) int {
	var verr *task.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, task.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, task.ErrIDAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abort(c *gin.Context, err error) {
	status := statusOf(err)
	_ = c.Error(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func badRequest(c *gin.Context, field, reason string) {
	abort(c, &task.ValidationError{Field: field, Reason: reason})
}
