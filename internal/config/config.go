// Package config handles loading tarefas.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/dmoraes/tarefas/internal/paths"
)

// DefaultRetentionDays is how long completed tasks stay active before the
// sweep archives them.
const DefaultRetentionDays = 7

// Config represents the tarefas.toml configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
	Archive Archive `toml:"archive"`
}

// Storage configures where the collection files live.
type Storage struct {
	// DataDir overrides the directory holding both collection files.
	DataDir string `toml:"data-dir"`

	// ActiveFile overrides the active collection file name.
	ActiveFile string `toml:"active-file"`

	// ArchiveFile overrides the archived collection file name.
	ArchiveFile string `toml:"archive-file"`
}

// Archive configures the retention sweep.
type Archive struct {
	// RetentionDays is the age, in days since completion, after which a
	// completed task is archived. Zero means the default.
	RetentionDays int `toml:"retention-days"`
}

// Load loads configuration from the working directory and the global
// config file. Project values win over global ones. Returns an empty
// config if neither file exists.
func Load(projectDir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(projectDir, "tarefas.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

// Retention returns the configured retention window.
func (c *Config) Retention() time.Duration {
	days := c.Archive.RetentionDays
	if days <= 0 {
		days = DefaultRetentionDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// ResolveDataDir returns the configured data directory, falling back to
// the default under the user's home.
func (c *Config) ResolveDataDir() (string, error) {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir, nil
	}
	return paths.DefaultDataDir()
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Storage.DataDir = mergeString(projectMeta.IsDefined("storage", "data-dir"), projectCfg.Storage.DataDir, globalCfg.Storage.DataDir)
	merged.Storage.ActiveFile = mergeString(projectMeta.IsDefined("storage", "active-file"), projectCfg.Storage.ActiveFile, globalCfg.Storage.ActiveFile)
	merged.Storage.ArchiveFile = mergeString(projectMeta.IsDefined("storage", "archive-file"), projectCfg.Storage.ArchiveFile, globalCfg.Storage.ArchiveFile)

	merged.Archive.RetentionDays = globalCfg.Archive.RetentionDays
	if projectMeta.IsDefined("archive", "retention-days") {
		merged.Archive.RetentionDays = projectCfg.Archive.RetentionDays
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
