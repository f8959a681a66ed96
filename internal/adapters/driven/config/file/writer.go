package file

import (
	"os"
	"path/filepath"

	"github.com/custodia-labs/lexport/internal/core/domain"
	"github.com/custodia-labs/lexport/internal/core/ports/driven"
)

// Ensure DocumentWriter implements the interface.
var _ driven.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter writes export documents to the local filesystem.
type DocumentWriter struct {
	perm os.FileMode
}

// NewDocumentWriter creates a writer that creates files with mode 0644.
func NewDocumentWriter() *DocumentWriter {
	return &DocumentWriter{perm: 0644}
}

// Write stores data at path. The parent directory must already exist.
func (w *DocumentWriter) Write(path string, data []byte) error {
	if err := os.WriteFile(path, data, w.perm); err != nil {
		return &domain.WriteError{Path: path, Err: err}
	}
	return nil
}

// OutputPath joins dir and file, defaulting dir to the current directory
// and file to <botName>.json.
func OutputPath(dir, file, botName string) string {
	if dir == "" {
		dir = "."
	}
	if file == "" {
		file = botName + ".json"
	}
	return filepath.Join(dir, file)
}
