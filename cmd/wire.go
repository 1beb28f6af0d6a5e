package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	planadapter "github.com/gigamonkey/scheduler/internal/adapters/render/plan"
	tomlrepo "github.com/gigamonkey/scheduler/internal/adapters/repo/toml"
	tokenfile "github.com/gigamonkey/scheduler/internal/adapters/tokens/file"
	"github.com/gigamonkey/scheduler/internal/application"
	"github.com/gigamonkey/scheduler/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	service       *application.Service
	tokens        ports.TokenStore
	planRenderer  func([]application.Solution, planadapter.RenderOptions) (string, error)
	calendarLogin calendarLoginConfig
	httpClient    *http.Client
	now           func() time.Time
}

type calendarLoginConfig struct {
	AuthURL    string
	TokenURL   string
	ClientID   string
	ListenAddr string
	Timeout    time.Duration
}

func wireApp() (*app, error) {
	repo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire schedule repository: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	tokenStore := tokenfile.NewStore(filepath.Join(homeDir, ".sched", "credentials"))

	return &app{
		service:      application.NewService(repo, ports.SystemClock{}),
		tokens:       tokenStore,
		planRenderer: planadapter.Render,
		calendarLogin: calendarLoginConfig{
			AuthURL:    envOrDefault("SCHED_AUTH_URL", "https://accounts.google.com/o/oauth2/v2/auth"),
			TokenURL:   envOrDefault("SCHED_TOKEN_URL", "https://oauth2.googleapis.com/token"),
			ClientID:   envOrDefault("SCHED_AUTH_CLIENT_ID", ""),
			ListenAddr: envOrDefault("SCHED_AUTH_LISTEN", "127.0.0.1:1455"),
			Timeout:    5 * time.Minute,
		},
		httpClient: http.DefaultClient,
		now:        time.Now,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
