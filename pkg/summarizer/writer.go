package summarizer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/user/idemfs/pkg/idemfs"
)

// Writer writes formatted summaries to files.
type Writer struct {
	formatter Formatter
	fs        *idemfs.FS
}

// NewWriter creates a new Writer with the given Formatter. Parent
// directories are ensured through fs.
func NewWriter(formatter Formatter, fs *idemfs.FS) *Writer {
	return &Writer{
		formatter: formatter,
		fs:        fs,
	}
}

// Write formats the summary and writes it to the specified path,
// replacing any previous summary.
func (w *Writer) Write(path string, summary *Summary) error {
	content := w.formatter.Format(summary)

	if dir := filepath.Dir(path); dir != "." {
		if err := w.fs.CreateDirAll(dir); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
