package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// OK sends a successful response. Extra top-level fields are merged into
// the body next to "success": true, matching the public API contract.
func OK(c *gin.Context, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail sends an error response with the given HTTP status and message
func Fail(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{
		"success": false,
		"error":   message,
	})
}

// FailErr sends an error response from an AppError.
// If AppError.Err is not nil it is logged but not returned to the client.
func FailErr(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = ErrInternal("", err)
	}

	if appErr.Err != nil {
		logrus.WithFields(logrus.Fields{
			"code":   appErr.Code,
			"status": appErr.HTTPStatus,
			"path":   c.FullPath(),
		}).WithError(appErr.Err).Error(appErr.Message)
	}

	Fail(c, appErr.HTTPStatus, appErr.Message)
}
