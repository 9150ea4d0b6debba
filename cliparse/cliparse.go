package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Ledger backends
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Port          int
	LedgerBackend string
	DatabaseURL   string
	LedgerDir     string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionSecret string

	PollInterval     time.Duration
	VoteLatency      time.Duration
	VoteFailureRate  float64
	FetchLatency     time.Duration
	FetchFailureRate float64
	SessionIdle      time.Duration
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("live-vote", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.LedgerBackend, "b", "", "Ledger backend (memory, file, sqlite, postgres, redis)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for sqlite or postgres")
	fs.StringVar(&cfg.LedgerDir, "ledger-dir", "", "Directory for the file backend")
	fs.StringVar(&cfg.RedisAddr, "redis", "", "Redis address for the redis backend")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session cookie secret (prefer env)")

	// Simulation tuning
	fs.DurationVar(&cfg.PollInterval, "poll-interval", 0, "Live feed interval")
	fs.DurationVar(&cfg.VoteLatency, "vote-latency", -1, "Simulated vote submission latency")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.LedgerBackend == "" {
		cfg.LedgerBackend = os.Getenv("LEDGER_BACKEND")
		if cfg.LedgerBackend == "" {
			cfg.LedgerBackend = BackendSQLite
		}
	}

	switch cfg.LedgerBackend {
	case BackendMemory:
	case BackendFile:
		if cfg.LedgerDir == "" {
			cfg.LedgerDir = os.Getenv("LEDGER_DIR")
		}
		if cfg.LedgerDir == "" {
			cfg.LedgerDir = "ledger-data"
		}
	case BackendSQLite, BackendPostgres:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			if cfg.LedgerBackend == BackendPostgres {
				return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
			}
			cfg.DatabaseURL = "file:live-vote.db"
		}
	case BackendRedis:
		if cfg.RedisAddr == "" {
			cfg.RedisAddr = os.Getenv("REDIS_ADDR")
		}
		if cfg.RedisAddr == "" {
			cfg.RedisAddr = "localhost:6379"
		}
		cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
		if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
			n, err := strconv.Atoi(dbStr)
			if err != nil {
				return Config{}, errors.New("invalid REDIS_DB env variable")
			}
			cfg.RedisDB = n
		}
	default:
		return Config{}, fmt.Errorf("unknown ledger backend %q", cfg.LedgerBackend)
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	var err error
	if cfg.PollInterval == 0 {
		if cfg.PollInterval, err = envDuration("POLL_INTERVAL", 3*time.Second); err != nil {
			return Config{}, err
		}
	}
	if cfg.VoteLatency < 0 {
		if cfg.VoteLatency, err = envDuration("VOTE_LATENCY", 500*time.Millisecond); err != nil {
			return Config{}, err
		}
	}
	if cfg.FetchLatency, err = envDuration("FETCH_LATENCY", 300*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.SessionIdle, err = envDuration("SESSION_IDLE", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.VoteFailureRate, err = envRate("VOTE_FAILURE_RATE", 0.02); err != nil {
		return Config{}, err
	}
	if cfg.FetchFailureRate, err = envRate("FETCH_FAILURE_RATE", 0.01); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envDuration(name string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s env variable", name)
	}
	return d, nil
}

func envRate(name string, def float64) (float64, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil || r < 0 || r > 1 {
		return 0, fmt.Errorf("invalid %s env variable (want 0..1)", name)
	}
	return r, nil
}
