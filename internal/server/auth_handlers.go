package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"biomind/ent"
	"biomind/internal/auth"
	"biomind/internal/store"
)

type registerRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Institution string `json:"institution"`
	Level       string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// userView is the public shape of an account. The hash never leaves
// the server.
type userView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Institution string `json:"institution,omitempty"`
	Level       string `json:"level"`
	XPPoints    int    `json:"xp_points"`
}

func toUserView(u *ent.User) userView {
	return userView{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Institution: u.Institution,
		Level:       string(u.Level),
		XPPoints:    u.XpPoints,
	}
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.users.ByEmail(c.Request.Context(), email); err == nil {
		respondError(c, http.StatusBadRequest, "email already registered")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	u, err := s.users.Create(c.Request.Context(), store.CreateUserParams{
		Name:        req.Name,
		Email:       email,
		HashedPW:    hash,
		Institution: req.Institution,
		Level:       req.Level,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserView(u))
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	u, err := s.users.ByEmail(c.Request.Context(), email)
	if err != nil || !auth.CheckPassword(req.Password, u.HashedPw) {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.issuer.Issue(u.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (s *Server) handleMe(c *gin.Context) {
	u, ok := auth.UserFrom(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	c.JSON(http.StatusOK, toUserView(u))
}
