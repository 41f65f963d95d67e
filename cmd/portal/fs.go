package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nativebridge/portal-go/internal/logger"
)

// resolveOutputPath places name inside output when output is a directory.
func resolveOutputPath(
	output string,
	name string,
) (string, error) {
	info, err := os.Stat(output)
	if err == nil && info.IsDir() {
		if name == "" || name == "." || name == string(filepath.Separator) {
			return "", fmt.Errorf("file has no name, pass a file path to --output")
		}
		return filepath.Join(output, filepath.Base(name)), nil
	}
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}
	return output, nil
}

// saveDownload writes what fetch produces to dst. Content goes to a temporary
// file next to dst first so a failed download never leaves a partial file.
func saveDownload(
	dst string,
	fetch func(w io.Writer) (int64, error),
) (written int64, err error) {
	logger.Logger.Debugf("[saveDownload] saving download to %s", dst)

	out, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".part-*")
	if err != nil {
		return 0, err
	}
	tmpPath := out.Name()
	defer func() {
		if err != nil {
			out.Close()
			os.Remove(tmpPath)
		}
	}()

	written, err = fetch(out)
	if err != nil {
		return 0, err
	}

	info, err := out.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat downloaded file: %w", err)
	}
	if written != info.Size() {
		return 0, fmt.Errorf("incomplete download: wrote %d bytes, file has %d bytes", written, info.Size())
	}

	if err = out.Sync(); err != nil {
		return 0, err
	}
	if err = out.Close(); err != nil {
		return 0, err
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return 0, err
	}
	if err = os.Rename(tmpPath, dst); err != nil {
		return 0, err
	}
	return written, nil
}
