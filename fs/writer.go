package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/mirrordoc"
)

// Ensure Writer implements mirrordoc.DocumentWriter at compile time.
var _ mirrordoc.DocumentWriter = (*Writer)(nil)

// Writer writes files atomically: data goes to a temporary file in the
// target directory which is then renamed over the target.
type Writer struct {
	perm os.FileMode
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{perm: 0644}
}

// WriteFile replaces the file at path with data. On failure the target is
// left as it was and no temporary file remains.
func (w *Writer) WriteFile(ctx context.Context, path string, data []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return mirrordoc.Errorf(mirrordoc.EWRITE, "failed to create %q: %v", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return mirrordoc.Errorf(mirrordoc.EWRITE, "failed to write %q: %v", path, err)
	}
	if err := tmp.Chmod(w.perm); err != nil {
		return mirrordoc.Errorf(mirrordoc.EWRITE, "failed to set mode of %q: %v", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return mirrordoc.Errorf(mirrordoc.EWRITE, "failed to sync %q: %v", path, err)
	}
	if err := tmp.Close(); err != nil {
		return mirrordoc.Errorf(mirrordoc.EWRITE, "failed to close %q: %v", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return mirrordoc.Errorf(mirrordoc.EWRITE, "failed to replace %q: %v", path, err)
	}
	return nil
}
