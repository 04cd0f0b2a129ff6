package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ArowuTest/raffle-backend/api/routes"
	"github.com/ArowuTest/raffle-backend/internal/config"
	"github.com/ArowuTest/raffle-backend/internal/handlers"
	"github.com/ArowuTest/raffle-backend/internal/metrics"
	"github.com/ArowuTest/raffle-backend/internal/raffle"
	mongorepo "github.com/ArowuTest/raffle-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/raffle-backend/internal/services"
	"github.com/ArowuTest/raffle-backend/internal/utils"
	"github.com/ArowuTest/raffle-backend/pkg/jwt"
	"github.com/ArowuTest/raffle-backend/pkg/mongodb"
	"github.com/ArowuTest/raffle-backend/pkg/vrf"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sasha-s/go-deadlock"
	"golang.org/x/exp/slog"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("Server exiting")
}

func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
	if lvl > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}
}

func run(cfg *config.Config) error {
	deadlock.Opts.Disable = !cfg.Raffle.DeadlockDetection

	entryFee, err := utils.ParseAmount(cfg.Raffle.EntryFee)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	mongoClient, err := mongodb.NewClient(connectCtx, cfg.MongoDB.URI)
	cancel()
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()
	if !mongoClient.SupportsTransactions() {
		slog.Warn("MongoDB deployment does not support transactions; payouts and state saves run without one")
	}
	db := mongoClient.Database(cfg.MongoDB.Database)

	stateRepo := mongorepo.NewRaffleStateRepository(db)
	winnerRepo := mongorepo.NewWinnerRepository(db)
	eventRepo := mongorepo.NewEventRepository(db)
	accountRepo := mongorepo.NewAccountRepository(db)
	blacklistRepo := mongorepo.NewBlacklistRepository(db)
	adminRepo := mongorepo.NewAdminUserRepository(db)

	m, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	adminTokens, oracleTokens, err := newTokenServices(cfg)
	if err != nil {
		return err
	}

	vrfClient := vrf.NewClient(vrf.Config{
		BaseURL:          cfg.VRF.BaseURL,
		APIKey:           cfg.VRF.APIKey,
		CallbackURL:      cfg.VRF.CallbackURL,
		Consumer:         common.HexToAddress(cfg.VRF.Consumer),
		MockAPI:          cfg.VRF.MockAPI,
		MockFulfillDelay: cfg.VRF.MockFulfillDelay,
	})
	defer vrfClient.Close()

	payoutService := services.NewPayoutService(accountRepo, blacklistRepo)
	eventService := services.NewEventService(eventRepo, winnerRepo, m)

	r, err := raffle.New(ctx, raffle.Config{
		EntryFee:       entryFee,
		Interval:       cfg.Raffle.Interval,
		RequestTimeout: cfg.Raffle.RequestTimeout,
		Oracle:         cfg.OracleConfig(),
	}, raffle.Dependencies{
		Oracle:     vrfClient,
		Transferer: payoutService,
		Store:      stateRepo,
		Transactor: mongoClient,
		Sink:       eventService,
	})
	if err != nil {
		return err
	}
	raffleService := services.NewRaffleService(r, winnerRepo, eventRepo, accountRepo, m)

	vrfClient.SetFulfiller(func(ctx context.Context, requestID string, words []*big.Int) error {
		_, err := raffleService.FulfillRandomness(ctx, requestID, words)
		return err
	})

	authService := services.NewAuthService(adminRepo, adminTokens)
	if err := authService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		return err
	}

	if cfg.Keeper.Enabled {
		keeper := services.NewKeeperService(raffleService, cfg.Keeper.PollInterval)
		go keeper.Run(ctx)
	}

	router := routes.SetupRouter(cfg, routes.HandlerDependencies{
		RaffleHandler: handlers.NewRaffleHandler(raffleService),
		AuthHandler:   handlers.NewAuthHandler(authService),
		AdminHandler:  handlers.NewAdminHandler(payoutService),
		AdminTokens:   adminTokens,
		OracleTokens:  oracleTokens,
		Gatherer:      prometheus.DefaultGatherer,
	})

	srv := &http.Server{
		Addr:              ":" + strings.TrimPrefix(cfg.Server.Port, ":"),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "port", cfg.Server.Port, "entryFee", entryFee, "interval", cfg.Raffle.Interval, "mockVRF", cfg.VRF.MockAPI)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newTokenServices builds the verifier for admin and keeper tokens and the one
// for coordinator callbacks
func newTokenServices(cfg *config.Config) (admin, oracle *jwt.TokenService, err error) {
	admin, err = jwt.NewTokenService(cfg.JWT.Secret, cfg.TokenTTL())
	if err != nil {
		return nil, nil, fmt.Errorf("JWT.Secret: %w", err)
	}
	oracle, err = jwt.NewTokenService(cfg.JWT.OracleSecret, cfg.TokenTTL())
	if err != nil {
		return nil, nil, fmt.Errorf("JWT.OracleSecret: %w", err)
	}
	return admin, oracle, nil
}
