package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/reportkeeper/internal/common"
)

// DiskStore keeps artifacts as plain files below a base directory.
type DiskStore struct {
	basePath string
}

// NewDiskStore creates the base directory if missing.
func NewDiskStore(basePath string) (*DiskStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("storage base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &DiskStore{basePath: basePath}, nil
}

func (d *DiskStore) path(ref string) (string, error) {
	p := filepath.FromSlash(ref)
	if !filepath.IsLocal(p) {
		return "", fmt.Errorf("%w: ref %q escapes storage root", common.ErrorIO, ref)
	}
	return filepath.Join(d.basePath, p), nil
}

// Save writes to a temp file next to the target and renames it into place,
// so a failed write never leaves a partial artifact behind.
func (d *DiskStore) Save(ctx context.Context, ref string, r io.Reader, size int64) error {
	target, err := d.path(ref)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("%w: create dir: %v", common.ErrorIO, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return fmt.Errorf("%w: create file: %v", common.ErrorIO, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write file: %v", common.ErrorIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close file: %v", common.ErrorIO, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("%w: rename file: %v", common.ErrorIO, err)
	}
	return nil
}

func (d *DiskStore) Exists(ctx context.Context, ref string) (bool, error) {
	target, err := d.path(ref)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(target)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("%w: stat: %v", common.ErrorIO, err)
	}
}

func (d *DiskStore) Delete(ctx context.Context, ref string) error {
	target, err := d.path(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: remove: %v", common.ErrorIO, err)
	}
	return nil
}

func (d *DiskStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	target, err := d.path(ref)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, common.ErrorArtifactMissing
		}
		return nil, fmt.Errorf("%w: open: %v", common.ErrorIO, err)
	}
	return f, nil
}
