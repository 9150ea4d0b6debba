package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/live-vote/cliparse"
	"github.com/danielhkuo/live-vote/db"
	"github.com/danielhkuo/live-vote/errsink"
	"github.com/danielhkuo/live-vote/feed"
	"github.com/danielhkuo/live-vote/ledger"
	"github.com/danielhkuo/live-vote/middleware"
	"github.com/danielhkuo/live-vote/roster"
	"github.com/danielhkuo/live-vote/router"
	"github.com/danielhkuo/live-vote/session"
	"github.com/danielhkuo/live-vote/showapi"
)

// openLedgerStore connects the configured ledger backend. The returned
// closer releases its connection.
func openLedgerStore(cfg cliparse.Config) (ledger.Store, func(), error) {
	switch cfg.LedgerBackend {
	case cliparse.BackendMemory:
		return ledger.NewMemoryStore(), func() {}, nil

	case cliparse.BackendFile:
		store, err := ledger.NewFileStore(cfg.LedgerDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil

	case cliparse.BackendSQLite, cliparse.BackendPostgres:
		dbConn, err := db.Open(cfg.LedgerBackend, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		// Create schema (tables)
		if err := db.CreateSchema(dbConn); err != nil {
			dbConn.Close()
			return nil, nil, fmt.Errorf("schema creation failed: %w", err)
		}
		slog.Info("Database schema ready", "backend", cfg.LedgerBackend)
		return ledger.NewSQLStore(dbConn), func() { dbConn.Close() }, nil

	case cliparse.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("redis ping failed: %w", err)
		}
		return ledger.NewRedisStore(rdb, ""), func() { rdb.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown ledger backend %q", cfg.LedgerBackend)
}

func main() {
	var err error

	// A .env file is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	store, closeStore, err := openLedgerStore(cfg)
	if err != nil {
		slog.Error("ledger backend unavailable", "backend", cfg.LedgerBackend, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	clock := clockwork.NewRealClock()

	// Shared show state
	contestants := roster.NewStore(roster.Seed(clock.Now()))
	broadcast := errsink.NewBroadcast()
	sim := feed.NewSimulator(contestants, broadcast, clock, showapi.SystemRandom{}, cfg.PollInterval)
	api := showapi.NewClient(showapi.Config{
		VoteLatency:      cfg.VoteLatency,
		VoteFailureRate:  cfg.VoteFailureRate,
		FetchLatency:     cfg.FetchLatency,
		FetchFailureRate: cfg.FetchFailureRate,
	}, clock, showapi.SystemRandom{})
	sessions := session.NewManager(store, contestants, sim, api, broadcast, clock)

	// The show starts live
	sim.Enable()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go sessions.RunJanitor(ctx, time.Minute, cfg.SessionIdle)

	// Create router
	mux := router.NewRouter(router.Deps{
		Roster:   contestants,
		Feed:     sim,
		Sessions: sessions,
		Catalog:  api,
	}, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		stop()
		sim.Close()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "ledger", cfg.LedgerBackend)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
