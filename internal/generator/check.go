package generator

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/seitarof/gen-manipulator/internal/errors"
)

// Compare reports which of files are missing from dir or differ from the
// copy on disk. Generation stamp lines and line endings are ignored.
func Compare(fs afero.Fs, dir string, files []File) ([]string, error) {
	var stale []string
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		onDisk, err := afero.ReadFile(fs, path)
		if os.IsNotExist(err) {
			stale = append(stale, path)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
		if !bytes.Equal(withoutStamps(onDisk), withoutStamps(f.Data)) {
			stale = append(stale, path)
		}
	}
	return stale, nil
}

func withoutStamps(src []byte) []byte {
	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	lines := bytes.Split(src, []byte("\n"))
	out := lines[:0]
	for _, line := range lines {
		if bytes.HasPrefix(bytes.TrimSpace(line), []byte("@Generated(")) {
			continue
		}
		out = append(out, line)
	}
	return bytes.Join(out, []byte("\n"))
}
