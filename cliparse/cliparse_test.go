// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("LEDGER_BACKEND", "postgres")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("SESSION_SECRET", "test-secret")
	os.Setenv("POLL_INTERVAL", "1s")
	os.Setenv("VOTE_FAILURE_RATE", "0")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.LedgerBackend != BackendPostgres || cfg.DatabaseURL != "postgres://test" {
		t.Errorf("unexpected storage config: %+v", cfg)
	}
	if cfg.PollInterval != time.Second {
		t.Errorf("expected poll interval 1s, got %v", cfg.PollInterval)
	}
	if cfg.VoteFailureRate != 0 {
		t.Errorf("expected vote failure rate 0, got %v", cfg.VoteFailureRate)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Setenv("SESSION_SECRET", "test-secret")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.LedgerBackend != BackendSQLite || cfg.DatabaseURL != "file:live-vote.db" {
		t.Errorf("unexpected default storage: %s %s", cfg.LedgerBackend, cfg.DatabaseURL)
	}
	if cfg.PollInterval != 3*time.Second {
		t.Errorf("expected poll interval 3s, got %v", cfg.PollInterval)
	}
	if cfg.VoteLatency != 500*time.Millisecond {
		t.Errorf("expected vote latency 500ms, got %v", cfg.VoteLatency)
	}
	if cfg.VoteFailureRate != 0.02 || cfg.FetchFailureRate != 0.01 {
		t.Errorf("unexpected failure rates: %v %v", cfg.VoteFailureRate, cfg.FetchFailureRate)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("VOTE_LATENCY", "2s")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-b", "memory", "-session-secret", "s1", "-vote-latency", "0s"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.VoteLatency != 0 {
		t.Errorf("CLI should override env: expected 0s latency, got %v", cfg.VoteLatency)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing secret", nil, []string{"-b", "memory"}},
		{"unknown backend", map[string]string{"SESSION_SECRET": "s"}, []string{"-b", "mongo"}},
		{"postgres without url", map[string]string{"SESSION_SECRET": "s"}, []string{"-b", "postgres"}},
		{"bad failure rate", map[string]string{"SESSION_SECRET": "s", "VOTE_FAILURE_RATE": "2"}, []string{"-b", "memory"}},
		{"bad interval", map[string]string{"SESSION_SECRET": "s", "POLL_INTERVAL": "soon"}, []string{"-b", "memory"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}
			defer os.Clearenv()

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
