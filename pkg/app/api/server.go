// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chainsafe/dapp-gateway/pkg/app/gateway"
	apphttp "github.com/chainsafe/dapp-gateway/pkg/app/http"
	"github.com/chainsafe/dapp-gateway/pkg/auth"
	"github.com/chainsafe/dapp-gateway/pkg/config"
	etherservice "github.com/chainsafe/dapp-gateway/pkg/ether/service"
	nftservice "github.com/chainsafe/dapp-gateway/pkg/nft/service"
	tokenservice "github.com/chainsafe/dapp-gateway/pkg/token/service"
	votingservice "github.com/chainsafe/dapp-gateway/pkg/voting/service"
)

const defaultRequestTimeout = 60

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting dApp gateway",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.Int64("active_network", cfg.ActiveNetwork),
	)

	if cfg.Wallet.Confirm {
		logger.Warn("Wallet confirmation prompts are not available in server mode, disabling")
		cfg.Wallet.Confirm = false
	}

	gw, err := gateway.Build(ctx, cfg, logger, os.Stdin, os.Stderr)
	if err != nil {
		return err
	}
	defer gw.Close()

	validator := auth.NewJWTValidator(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if !validator.IsConfigured() {
		logger.Warn("JWT secret not set, write endpoints are unauthenticated")
	}
	allowed, err := auth.ParseAllowlist(cfg.Auth.AllowedAddresses)
	if err != nil {
		return fmt.Errorf("auth allowlist: %w", err)
	}
	logger.Info("Write access restricted", zap.Int("allowed_addresses", allowed.Len()))

	router := s.setupRouter(gw, validator, allowed, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) setupRouter(gw *gateway.Gateway, validator *auth.JWTValidator, allowed *auth.Allowlist, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Second * defaultRequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		auth.RegisterRoutes(r, validator, allowed, s.cfg.Auth.Issuer, s.cfg.Auth.LoginSkew, logger)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireWrites(validator, allowed, logger))

			tokenservice.RegisterRoutes(r, gw.Token, logger)
			nftservice.RegisterRoutes(r, gw.NFT, logger)
			votingservice.RegisterRoutes(r, gw.Voting, logger)
			etherservice.RegisterRoutes(r, gw.Ether, logger)
			registerTxRoutes(r, gw, logger)
			registerNetworkRoutes(r, gw.Networks)
		})
	})

	return r
}
