package generator

import (
	"golang.org/x/tools/txtar"
)

// ArchiveWriter collects written files into a txtar archive instead of
// touching the filesystem.
type ArchiveWriter struct {
	archive txtar.Archive
}

// NewArchiveWriter creates an empty archive writer.
func NewArchiveWriter() *ArchiveWriter {
	return &ArchiveWriter{}
}

func (w *ArchiveWriter) Write(filename string, data []byte) error {
	w.archive.Files = append(w.archive.Files, txtar.File{
		Name: filename,
		Data: append([]byte(nil), data...),
	})
	return nil
}

// Len returns the number of collected files.
func (w *ArchiveWriter) Len() int { return len(w.archive.Files) }

// Bytes formats the collected files as a txtar archive.
func (w *ArchiveWriter) Bytes() []byte {
	return txtar.Format(&w.archive)
}
