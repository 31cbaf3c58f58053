package task

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultActiveFile is the default file name for the active collection.
const DefaultActiveFile = "tarefas.json"

// DefaultArchiveFile is the default file name for the archived collection.
const DefaultArchiveFile = "tarefas_arquivadas.json"

// Files names the two collection files on disk.
type Files struct {
	Active   string
	Archived string
}

// DefaultFiles returns the collection paths under dir.
func DefaultFiles(dir string) Files {
	return Files{
		Active:   filepath.Join(dir, DefaultActiveFile),
		Archived: filepath.Join(dir, DefaultArchiveFile),
	}
}

// readCollection reads a JSON array of tasks. A missing file or a parse
// failure yields an empty collection; reads never fail loudly.
func readCollection(path string) []Task {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil
	}
	return tasks
}

// writeCollection overwrites path with the tasks as an indented JSON
// array. Non-ASCII text is written literally, not escaped. The write goes
// through a temp file and rename so a crash mid-write cannot truncate the
// previous contents.
func writeCollection(path string, tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(tasks); err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(buf.Bytes())
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
