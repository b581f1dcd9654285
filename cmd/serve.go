package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"biomind/internal/analytics"
	"biomind/internal/auth"
	"biomind/internal/career"
	"biomind/internal/config"
	"biomind/internal/gateway"
	"biomind/internal/lab"
	"biomind/internal/llm"
	"biomind/internal/progress"
	"biomind/internal/quiz"
	"biomind/internal/server"
	"biomind/internal/store"
	"biomind/internal/tutor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

// runServer opens the store, builds the services, and serves the API
// until interrupted.
func runServer(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProvider(ctx, cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("init LLM provider: %w", err)
	}
	gw := gateway.New(provider, logger, cfg.LLM.Timeout)

	prog := progress.NewService(st.Users(), st.Mastery(), st.QuizResults(), st.SkillScores())
	careerSvc := career.NewService(prog, st.CareerGoals(), st.SkillScores(), gw)

	srv := server.New(server.Deps{
		Logger:    logger,
		Issuer:    auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		Users:     st.Users(),
		Tutor:     tutor.NewService(gw, prog),
		Quiz:      quiz.NewService(quiz.NewPendingStore(), gw, st.QuizResults(), prog),
		Lab:       lab.NewEngine(lab.NewSessionStore(), gw, st.LabLogs(), prog),
		Career:    careerSvc,
		Analytics: analytics.NewService(prog, careerSvc, gw, logger),
	})

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Router(cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", cfg.Addr),
			zap.String("db", dbPath),
			zap.String("provider", provider.ModelID()),
		)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// newLogger builds a production logger, or a development one when
// BIOMIND_DEBUG is set.
func newLogger() (*zap.Logger, error) {
	if os.Getenv("BIOMIND_DEBUG") != "" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
