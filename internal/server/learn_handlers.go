package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"biomind/internal/auth"
)

type lessonRequest struct {
	Topic      string `json:"topic" binding:"required"`
	Difficulty string `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Query      string `json:"query"`
}

// handleGenerateLesson returns a structured lesson, or a free-form
// answer when the request carries a query instead.
func (s *Server) handleGenerateLesson(c *gin.Context) {
	u, _ := auth.UserFrom(c)

	var req lessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if req.Query != "" {
		answer, err := s.tutor.Ask(c.Request.Context(), u, req.Query)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"topic": req.Topic, "answer": answer})
		return
	}

	lesson, err := s.tutor.GenerateLesson(c.Request.Context(), u, req.Topic, req.Difficulty)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}
