package api

import (
	"errors"
	"net/http"

	"github.com/example/cravecurve/pkg/media"
	"github.com/example/cravecurve/pkg/repository"
	"github.com/example/cravecurve/pkg/service"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// errorStatus maps the domain error taxonomy 1:1 to status codes.
func errorStatus(err error) int {
	var uploadErr *media.UploadError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidState):
		return http.StatusConflict
	case errors.As(err, &uploadErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// respondError emits the uniform {message, error} body.
func respondError(c *gin.Context, message string, err error) {
	c.JSON(errorStatus(err), gin.H{"message": message, "error": err.Error()})
}

func parseObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id", "error": err.Error()})
		return primitive.NilObjectID, false
	}
	return id, true
}
