// Package httpapi exposes regeneration and account management over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/bnema/terabox-cookie-cli/internal/application"
	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	defaultRegenerateTimeout = 2 * time.Minute
	defaultShutdownTimeout   = 15 * time.Second
)

type Regenerator interface {
	Regenerate(ctx context.Context, number int) (domain.Regeneration, error)
}

type Accounts interface {
	AddAccount(ctx context.Context, cmd application.AddAccountCommand) (domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	Cookies(ctx context.Context) (map[string]string, error)
}

type Options struct {
	RegenerateTimeout time.Duration
	// RateLimit is the sustained /regenerate rate per second. Zero disables
	// limiting.
	RateLimit   float64
	RateBurst   int
	CORSOrigins []string

	Recorder *metrics.Recorder
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

type Server struct {
	engine   *gin.Engine
	accounts Accounts
	regen    Regenerator
	flights  singleflight.Group
	opts     Options
	logger   *zap.Logger
}

func NewServer(accounts Accounts, regen Regenerator, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.RegenerateTimeout <= 0 {
		opts.RegenerateTimeout = defaultRegenerateTimeout
	}

	s := &Server{
		accounts: accounts,
		regen:    regen,
		opts:     opts,
		logger:   opts.Logger,
	}
	s.engine = s.routes()

	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	engine := gin.New()
	engine.Use(
		requestID(),
		requestLogger(s.logger),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			s.logger.Error("handler panicked", zap.Any("panic", recovered), zap.String("request_id", c.GetString(requestIDKey)))
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody("internal server error"))
		}),
	)
	if s.opts.Recorder != nil {
		engine.Use(observe(s.opts.Recorder))
	}
	if len(s.opts.CORSOrigins) > 0 {
		engine.Use(cors.New(corsConfig(s.opts.CORSOrigins)))
	}

	regenerate := []gin.HandlerFunc{s.handleRegenerate}
	if s.opts.RateLimit > 0 {
		regenerate = append([]gin.HandlerFunc{rateLimit(rate.NewLimiter(rate.Limit(s.opts.RateLimit), max(s.opts.RateBurst, 1)))}, regenerate...)
	}

	engine.GET("/regenerate", regenerate...)
	engine.GET("/add_account", s.handleAddAccountQuery)
	engine.GET("/accounts", s.handleListAccounts)
	engine.POST("/accounts", s.handleAddAccountJSON)
	engine.GET("/cookies", s.handleCookies)
	engine.GET("/health", s.handleHealth)
	if s.opts.Gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{})))
	}

	return engine
}

// Serve blocks until ctx is cancelled, then drains in-flight requests.
func (s *Server) Serve(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http api listening", zap.String("addr", addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http api: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("http api shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http api: %w", err)
	}

	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cfg
}
