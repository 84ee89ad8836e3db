// Package ginmw validates UEC request bodies for gin handlers.
package ginmw

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	uec "github.com/uecformat/uec"
	"github.com/uecformat/uec/middleware"
)

// ValidateCard reads the request body, parses and validates it as a UEC
// document with the given strictness, stores the value in the request
// context, and on failure answers 400 with an issues payload.
func ValidateCard(strict bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		res := uec.Parse(string(body), strict)
		if !res.OK {
			c.JSON(http.StatusBadRequest, middleware.ErrorPayload(res.Errors))
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(middleware.ContextWithCard(c.Request.Context(), res.Value))
		c.Next()
	}
}

// GetCard fetches the validated card stored by ValidateCard.
func GetCard(c *gin.Context) (any, bool) {
	return middleware.CardFromContext(c.Request.Context())
}
