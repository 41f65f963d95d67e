package repository

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileAttachment is a draft attachment backed by a file on disk.
type FileAttachment struct {
	Path string
}

// NewFileAttachment checks that path is a regular file.
func NewFileAttachment(path string) (FileAttachment, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileAttachment{}, err
	}
	if !info.Mode().IsRegular() {
		return FileAttachment{}, fmt.Errorf("not a regular file: %s", path)
	}
	return FileAttachment{Path: path}, nil
}

func (a FileAttachment) Name() string {
	return filepath.Base(a.Path)
}

func (a FileAttachment) Open() (io.ReadCloser, error) {
	return os.Open(a.Path)
}
