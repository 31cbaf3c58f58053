// Package testsupport builds the tarefas binary for testscript-driven
// CLI tests.
package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce   sync.Once
	tarefasPath string
	buildErr    error
)

// BuildTarefas builds the tarefas binary once and returns its path.
func BuildTarefas(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "tarefas-bin-")
		if err != nil {
			buildErr = err
			return
		}

		tarefasPath = filepath.Join(binDir, "tarefas")
		cmd := exec.Command("go", "build", "-o", tarefasPath, "./cmd/tarefas")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build tarefas: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return tarefasPath
}

// SetupScriptEnv configures common environment variables for testscript.
// Each script gets a private data directory and plain, uncolored output.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TAREFAS", BuildTarefas(t))
	env.Setenv("TAREFAS_DATA_DIR", filepath.Join(env.WorkDir, "data"))
	env.Setenv("HOME", env.WorkDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", dir)
		}
		dir = parent
	}
}
