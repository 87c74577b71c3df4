package middleware

import (
	"log/slog"
	"net/http"

	"lucky-draw/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const msgInternalServerError = "Internal server error"

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Latest public error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if len(c.Errors) == 0 {
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, c.Errors.Last().Error()))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, msgInternalServerError))
				c.Abort()
			}
		}()
		c.Next()
	}
}
