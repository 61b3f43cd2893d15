// internal/app/store/resources/artifact.go
package resourcestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/dalemusser/gentlelibrary/internal/domain/models"
	"github.com/google/uuid"
)

// ErrNoData is returned by Load when no generated catalog file exists yet.
var ErrNoData = errors.New("catalog data file not found")

// buildNamespace scopes build ids to this application.
var buildNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("gentlelibrary"))

// Artifact is the generated file the web app loads at startup.
type Artifact struct {
	BuildID   string            `json:"build_id"` // UUIDv5 of the source bytes
	Source    string            `json:"source"`
	Count     int               `json:"count"`
	Resources []models.Resource `json:"resources"`
}

// NewArtifact wraps generated records. The build id is derived from the
// input bytes, so re-running on the same export reproduces the file.
func NewArtifact(source string, input []byte, rs []models.Resource) Artifact {
	if rs == nil {
		rs = []models.Resource{}
	}
	return Artifact{
		BuildID:   uuid.NewSHA1(buildNamespace, input).String(),
		Source:    filepath.ToSlash(source),
		Count:     len(rs),
		Resources: rs,
	}
}

// Encode renders the artifact as indented JSON.
func Encode(a Artifact) ([]byte, error) {
	b, err := sonic.ConfigStd.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return append(b, '\n'), nil
}

// Decode parses an artifact produced by Encode.
func Decode(b []byte) (Artifact, error) {
	var a Artifact
	if err := sonic.ConfigStd.Unmarshal(b, &a); err != nil {
		return Artifact{}, fmt.Errorf("decode catalog: %w", err)
	}
	return a, nil
}

// WriteFile encodes a and replaces path with it. The parent directory is
// created if needed and the file is swapped in by rename.
func WriteFile(path string, a Artifact) error {
	b, err := Encode(a)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}

// Load reads and validates the artifact at path. A missing file yields
// ErrNoData so callers can show onboarding instead of failing.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	a, err := Decode(b)
	if err != nil {
		return nil, err
	}
	return NewCatalog(a)
}
