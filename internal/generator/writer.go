package generator

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/seitarof/gen-manipulator/internal/errors"
)

type fileWriter struct {
	fs afero.Fs
}

// NewFileWriter creates a writer that replaces files on fs atomically:
// the data is written to a temporary file beside the target and renamed
// into place.
func NewFileWriter(fs afero.Fs) FileWriter {
	return &fileWriter{fs: fs}
}

func (w *fileWriter) Write(filename string, data []byte) error {
	dir := filepath.Dir(filename)
	if err := w.fs.MkdirAll(dir, 0o755); err != nil {
		return errors.Mark(errors.Wrapf(err, "create %s", dir), errors.ErrWrite)
	}

	if _, err := w.fs.Stat(filename); err == nil {
		if err := w.fs.Remove(filename); err != nil {
			err = errors.Wrapf(err, "remove existing %s", filename)
			err = errors.WithHint(err, "check the file's permissions or choose another --output directory")
			return errors.Mark(err, errors.ErrOutputConflict)
		}
	} else if !os.IsNotExist(err) {
		return errors.Mark(errors.Wrapf(err, "stat %s", filename), errors.ErrOutputConflict)
	}

	tmp, err := afero.TempFile(w.fs, dir, "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "create temp file in %s", dir), errors.ErrWrite)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = w.fs.Remove(tmpName)
		return errors.Mark(errors.Wrapf(werr, "write %s", filename), errors.ErrWrite)
	}

	if err := w.fs.Rename(tmpName, filename); err != nil {
		_ = w.fs.Remove(tmpName)
		return errors.Mark(errors.Wrapf(err, "rename into %s", filename), errors.ErrWrite)
	}
	return nil
}
