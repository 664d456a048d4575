// Package storage holds report artifacts outside the database: an S3/MinIO
// bucket or a local directory.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ArtifactStore persists opaque report bytes under a reference key.
//
// Delete of a missing key is not an error. Open of a missing key returns
// common.ErrorArtifactMissing. Every other failure wraps common.ErrorIO.
type ArtifactStore interface {
	Save(ctx context.Context, ref string, r io.Reader, size int64) error
	Exists(ctx context.Context, ref string) (bool, error)
	Delete(ctx context.Context, ref string) error
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
}

// Presigner is implemented by stores that can hand out direct download URLs.
type Presigner interface {
	PresignGet(ctx context.Context, ref string, ttl time.Duration) (string, error)
}

// now and newUUID are seams for deterministic keys in tests.
var (
	now     = time.Now
	newUUID = uuid.New
)

// NewArtifactRef builds a fresh, collision-free key for an upload owned by
// accountID. The uploaded file name is kept as the last path element.
func NewArtifactRef(accountID int64, fileName string) string {
	d := now()
	return path.Join("reports",
		fmt.Sprintf("%d", accountID),
		fmt.Sprintf("%04d/%02d/%02d", d.Year(), d.Month(), d.Day()),
		newUUID().String(),
		SafeFilename(fileName))
}

// SafeFilename strips directories and separators from a client supplied name.
func SafeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(filepath.FromSlash(name))
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return "report"
	}
	return name
}
