// Package server wires the HTTP API: gin router, CORS, authentication,
// and one handler per operation.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"biomind/internal/analytics"
	"biomind/internal/auth"
	"biomind/internal/career"
	"biomind/internal/lab"
	"biomind/internal/quiz"
	"biomind/internal/store"
	"biomind/internal/tutor"
)

// Server holds the services behind the HTTP API.
type Server struct {
	logger    *zap.Logger
	issuer    *auth.TokenIssuer
	users     store.UserRepo
	tutor     *tutor.Service
	quiz      *quiz.Service
	lab       *lab.Engine
	career    *career.Service
	analytics *analytics.Service
}

// Deps bundles the constructor arguments for New.
type Deps struct {
	Logger    *zap.Logger
	Issuer    *auth.TokenIssuer
	Users     store.UserRepo
	Tutor     *tutor.Service
	Quiz      *quiz.Service
	Lab       *lab.Engine
	Career    *career.Service
	Analytics *analytics.Service
}

// New creates a Server.
func New(d Deps) *Server {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		logger:    logger,
		issuer:    d.Issuer,
		users:     d.Users,
		tutor:     d.Tutor,
		quiz:      d.Quiz,
		lab:       d.Lab,
		career:    d.Career,
		analytics: d.Analytics,
	}
}

// Router builds the gin engine with all routes registered. An empty
// origins list allows all origins.
func (s *Server) Router(corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", s.handleHealth)

	r.POST("/auth/register", s.handleRegister)
	r.POST("/auth/login", s.handleLogin)

	authed := r.Group("/", auth.Middleware(s.issuer, s.users))
	{
		authed.GET("/auth/me", s.handleMe)

		authed.POST("/learn/generate-lesson", s.handleGenerateLesson)

		authed.POST("/quiz/generate", s.handleGenerateQuiz)
		authed.POST("/quiz/submit", s.handleSubmitQuiz)

		authed.POST("/lab/start", s.handleStartLab)
		authed.POST("/lab/decide", s.handleLabDecide)

		authed.POST("/career/analyze", s.handleCareerAnalyze)

		authed.GET("/analytics/dashboard", s.handleDashboard)
		authed.GET("/analytics/learning-path", s.handleLearningPath)
	}

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

// requestLogger logs one line per request with method, path, status,
// and latency.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
