package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gigamonkey/scheduler/internal/ports"
	"github.com/gigamonkey/scheduler/internal/timetable"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName        = "config"
	configType        = "toml"
	schedulePathKey   = "schedule.path"
	scheduleConfigDir = ".sched"
	scheduleFile      = "schedule.toml"
)

// Repository loads schedule definitions from a TOML file. The file
// location comes from the schedule.path key of ~/.sched/config.toml,
// defaulting to ~/.sched/schedule.toml.
type Repository struct {
	schedulePath string
}

var _ ports.ScheduleRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, scheduleConfigDir, scheduleFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, scheduleConfigDir))
	cfg.SetDefault(schedulePathKey, defaultPath)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	schedulePath := cfg.GetString(schedulePathKey)
	if schedulePath == "" {
		return nil, errors.New("schedule path is empty")
	}
	if !filepath.IsAbs(schedulePath) {
		schedulePath, err = filepath.Abs(schedulePath)
		if err != nil {
			return nil, fmt.Errorf("resolve schedule path: %w", err)
		}
	}

	return &Repository{schedulePath: filepath.Clean(schedulePath)}, nil
}

func (r *Repository) Load(ctx context.Context) (timetable.Definition, error) {
	if err := ctx.Err(); err != nil {
		return timetable.Definition{}, err
	}

	raw, err := os.ReadFile(r.schedulePath)
	if err != nil {
		return timetable.Definition{}, fmt.Errorf("read schedule file %q: %w", r.schedulePath, err)
	}

	var schema scheduleSchema
	if err := toml.Unmarshal(raw, &schema); err != nil {
		return timetable.Definition{}, fmt.Errorf("decode schedule file %q: %w", r.schedulePath, err)
	}

	def, err := schema.definition()
	if err != nil {
		return timetable.Definition{}, fmt.Errorf("invalid schedule file %q: %w", r.schedulePath, err)
	}

	return def, nil
}
