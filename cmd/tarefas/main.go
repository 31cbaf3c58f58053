// Package main implements the tarefas CLI tool.
package main

import (
	"os"
	"path/filepath"

	"github.com/dmoraes/tarefas/internal/config"
	"github.com/dmoraes/tarefas/internal/paths"
	"github.com/dmoraes/tarefas/task"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tarefas",
	Short: "Gerenciador de tarefas com arquivamento automático",
	Long: "Gerenciador de tarefas pessoal. Sem subcomando, abre o menu " +
		"interativo; os subcomandos espelham as opções do menu para uso em scripts.",
	RunE:          runMenu,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// environment bundles everything an operation needs to touch disk.
type environment struct {
	cfg   *config.Config
	files task.Files
}

// loadEnvironment resolves config and collection file paths. The data
// directory can be forced through TAREFAS_DATA_DIR, which scripts and
// tests use to sandbox state.
func loadEnvironment() (*environment, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	dir := os.Getenv("TAREFAS_DATA_DIR")
	if dir == "" {
		dir, err = cfg.ResolveDataDir()
		if err != nil {
			return nil, err
		}
	}

	files := task.DefaultFiles(dir)
	if cfg.Storage.ActiveFile != "" {
		files.Active = filepath.Join(dir, cfg.Storage.ActiveFile)
	}
	if cfg.Storage.ArchiveFile != "" {
		files.Archived = filepath.Join(dir, cfg.Storage.ArchiveFile)
	}

	return &environment{cfg: cfg, files: files}, nil
}

// loadStore loads the persisted collections for a one-shot subcommand.
func loadStore() (*environment, *task.Store, error) {
	env, err := loadEnvironment()
	if err != nil {
		return nil, nil, err
	}
	return env, task.Load(env.files), nil
}
