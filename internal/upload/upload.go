// Package upload stores submitted post images on local disk.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	FieldName = "image"
	MaxSize   = 10 * 1024 * 1024

	tempPattern = ".upload-*"
)

type Status int

const (
	Accepted Status = iota
	Missing
	TooLarge
	BadType
	Unexpected
)

func (s Status) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case Missing:
		return "missing"
	case TooLarge:
		return "too_large"
	case BadType:
		return "bad_type"
	case Unexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Result is the outcome of an image upload. Path is set only when Status is Accepted.
type Result struct {
	Status Status
	Path   string
}

// allowedTypes maps the client declared MIME type to the stored file extension.
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

var ErrOutsideStore error = errors.New("path is outside the upload store")

type Store struct {
	dir          string
	publicPrefix string
	maxSize      int64
}

// NewStore creates dir if needed. Files saved in dir are exposed under publicPrefix.
func NewStore(dir, publicPrefix string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Store{
		dir:          dir,
		publicPrefix: "/" + strings.Trim(publicPrefix, "/"),
		maxSize:      maxSize,
	}, nil
}

// Save streams body to disk under a generated name. Constraint violations are
// reported through the Result; the error is reserved for I/O failures.
func (s *Store) Save(contentType string, body io.Reader) (Result, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return Result{Status: BadType}, nil
	}
	ext, ok := allowedTypes[mediaType]
	if !ok {
		return Result{Status: BadType}, nil
	}

	tmp, err := os.CreateTemp(s.dir, tempPattern)
	if err != nil {
		return Result{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	written, err := io.Copy(tmp, io.LimitReader(body, s.maxSize+1))
	closeErr := tmp.Close()
	if err != nil {
		os.Remove(tmpName)
		return Result{}, fmt.Errorf("write upload: %w", err)
	}
	if closeErr != nil {
		os.Remove(tmpName)
		return Result{}, fmt.Errorf("close upload: %w", closeErr)
	}

	if written > s.maxSize {
		os.Remove(tmpName)
		return Result{Status: TooLarge}, nil
	}

	name := uuid.NewString() + ext
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpName)
		return Result{}, fmt.Errorf("rename upload: %w", err)
	}

	return Result{
		Status: Accepted,
		Path:   path.Join(s.publicPrefix, name),
	}, nil
}

// Remove deletes a previously saved file given its public path.
func (s *Store) Remove(publicPath string) error {
	name := strings.TrimPrefix(publicPath, s.publicPrefix+"/")
	if name == publicPath || name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrOutsideStore, publicPath)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// Handler serves saved files read-only. Directory listings and dotfiles
// (in-flight temp files) are hidden.
func (s *Store) Handler() http.Handler {
	files := http.FileServer(http.Dir(s.dir))
	return http.StripPrefix(s.publicPrefix+"/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Path
		if name == "" || strings.HasSuffix(name, "/") || strings.HasPrefix(path.Base(name), ".") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}))
}
