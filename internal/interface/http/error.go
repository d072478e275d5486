package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"user-accounts/internal/domain"
	"user-accounts/pkg/response"
)

// writeError maps a use-case failure onto the response envelope. Validation
// codes are translated first; anything that is not a client error becomes a
// generic 500 with no internal detail leaked.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	translated := domain.Translate(err)

	var ce *domain.ClientError
	if errors.As(translated, &ce) {
		response.Fail(c, ce.Status, ce.Message)
		return
	}

	if logger != nil {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
			"error":      err.Error(),
		}).Error("unhandled error")
	}
	response.Error(c)
}
