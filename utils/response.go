package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// RespondError maps err onto the admin API's error contract: validation and
// not-found both answer 400 with {"message"}; anything else is a 500 whose
// message is prefix + err.
func RespondError(c *gin.Context, err error, prefix string) {
	switch KindOf(err) {
	case KindValidation, KindNotFound:
		JSONMessage(c, http.StatusBadRequest, clientMessage(err))
	default:
		_ = c.Error(err)
		JSONMessage(c, http.StatusInternalServerError, prefix+err.Error())
	}
}

// RespondErrorNoBody is RespondError for endpoints whose 500 carries no body.
func RespondErrorNoBody(c *gin.Context, err error) {
	switch KindOf(err) {
	case KindValidation, KindNotFound:
		JSONMessage(c, http.StatusBadRequest, clientMessage(err))
	default:
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
	}
}

func clientMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}
