package util

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

// Read Bearer token from the request Authorization header and return the token
func ReadBearerToken(ctx *gin.Context) (string, error) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return "", errors.New("no authorization header specified")
	}

	headerParts := strings.SplitN(header, " ", 2)
	if len(headerParts) != 2 {
		return "", errors.New("wrong authorization header format")
	}

	if !strings.EqualFold(headerParts[0], "BEARER") {
		return "", errors.New("invalid token type; expected 'Bearer'")
	}

	if headerParts[1] == "" {
		return "", errors.New("token is empty")
	}

	return headerParts[1], nil
}
