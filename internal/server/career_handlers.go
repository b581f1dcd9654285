package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"biomind/internal/auth"
	"biomind/internal/career"
)

type careerRequest struct {
	TargetRole string `json:"target_role" binding:"required"`
}

func (s *Server) handleCareerAnalyze(c *gin.Context) {
	u, _ := auth.UserFrom(c)

	var req careerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	analysis, err := s.career.Analyze(c.Request.Context(), u, career.Role(req.TargetRole))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (s *Server) handleDashboard(c *gin.Context) {
	u, _ := auth.UserFrom(c)

	d, err := s.analytics.Dashboard(c.Request.Context(), u)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) handleLearningPath(c *gin.Context) {
	u, _ := auth.UserFrom(c)

	path, err := s.analytics.LearningPath(c.Request.Context(), u)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, path)
}
