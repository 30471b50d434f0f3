package util

import (
	"fmt"
	"os"
	"syscall"
)

// FileRevision identifies one on-disk revision of a document. Saves
// replace the document by renaming a temp file over it, so every
// rewrite changes the inode even when size and modification time do
// not move.
type FileRevision struct {
	Size    int64
	ModTime int64 // UnixNano
	Inode   uint64
}

// StatRevision reads the revision of the file at path.
// Supported on Linux and macOS.
func StatRevision(path string) (FileRevision, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return FileRevision{}, err
	}

	sysStat, ok := stat.Sys().(*syscall.Stat_t)
	if !ok {
		return FileRevision{}, fmt.Errorf("failed to get file system information: %s", path)
	}

	return FileRevision{
		Size:    stat.Size(),
		ModTime: stat.ModTime().UnixNano(),
		Inode:   sysStat.Ino,
	}, nil
}
