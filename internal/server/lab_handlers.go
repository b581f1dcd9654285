package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"biomind/internal/auth"
)

type labStartRequest struct {
	LabType string `json:"lab_type" binding:"required,oneof=pcr gel_electrophoresis dna_extraction"`
}

type labDecideRequest struct {
	SessionID string `json:"session_id" binding:"required,uuid"`
	Choice    string `json:"choice" binding:"required"`
}

func (s *Server) handleStartLab(c *gin.Context) {
	u, _ := auth.UserFrom(c)

	var req labStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	step, err := s.lab.Start(c.Request.Context(), u, req.LabType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, step)
}

func (s *Server) handleLabDecide(c *gin.Context) {
	u, _ := auth.UserFrom(c)

	var req labDecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	view, err := s.lab.Decide(c.Request.Context(), u, req.SessionID, req.Choice)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
