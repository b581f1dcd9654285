package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"biomind/internal/career"
	"biomind/internal/lab"
	"biomind/internal/llm"
	"biomind/internal/quiz"
	"biomind/internal/store"
)

// respondError writes the uniform error envelope.
func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// respondServiceError maps domain and provider errors to HTTP statuses.
// Provider outages surface as 502: the client may retry, the server
// does not.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, quiz.ErrQuestionNotFound):
		respondError(c, http.StatusNotFound, "question not found")
	case errors.Is(err, lab.ErrSessionNotFound):
		respondError(c, http.StatusNotFound, "lab session not found")
	case errors.Is(err, career.ErrUnknownRole):
		respondError(c, http.StatusBadRequest, "unknown target role")
	case errors.Is(err, store.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found")
	case isUpstreamError(err):
		respondError(c, http.StatusBadGateway, "generation service unavailable")
	default:
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}

// isUpstreamError reports whether err came from the LLM provider.
func isUpstreamError(err error) bool {
	var unavail *llm.ErrProviderUnavailable
	var rate *llm.ErrRateLimit
	var trunc *llm.ErrMaxTokensExceeded
	return errors.As(err, &unavail) || errors.As(err, &rate) || errors.As(err, &trunc)
}
