package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"biomind/internal/auth"
)

type quizGenerateRequest struct {
	Topic        string `json:"topic" binding:"required"`
	QuestionType string `json:"question_type" binding:"required,oneof=mcq short scenario"`
	Difficulty   string `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
}

type quizSubmitRequest struct {
	QuestionID    int64  `json:"question_id" binding:"required"`
	StudentAnswer string `json:"student_answer" binding:"required"`
}

func (s *Server) handleGenerateQuiz(c *gin.Context) {
	u, _ := auth.UserFrom(c)

	var req quizGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	q, err := s.quiz.Generate(c.Request.Context(), u, req.Topic, req.QuestionType, req.Difficulty)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

func (s *Server) handleSubmitQuiz(c *gin.Context) {
	u, _ := auth.UserFrom(c)

	var req quizSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	fb, err := s.quiz.Submit(c.Request.Context(), u, req.QuestionID, req.StudentAnswer)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fb)
}
