// Package upload persists multipart file uploads on the local filesystem and
// removes them again when the surrounding request fails after the file was
// already written.
package upload

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MaxFileSize is the upper bound for a single uploaded file.
const MaxFileSize = 20 << 20 // 20MB

var (
	// ErrNoFile is returned when the request carries no file in the field.
	ErrNoFile = errors.New("no file uploaded")
	// ErrFileTooLarge is returned when the file exceeds MaxFileSize.
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
	// ErrUnsupportedType is returned for anything that is not an image or a PDF.
	ErrUnsupportedType = errors.New("only image files and pdf files are allowed")
)

// File describes a stored upload.
type File struct {
	// PublicPath is the URL path the file is served under.
	PublicPath string
	// DiskPath is the local filesystem location of the file.
	DiskPath string
}

// Store writes uploads into a directory and derives their public URL paths.
type Store struct {
	dir        string
	publicPath string
}

// NewStore creates a Store rooted at dir, serving files under publicPath.
func NewStore(dir, publicPath string) *Store {
	if publicPath == "" {
		publicPath = "/uploads"
	}

	return &Store{
		dir:        dir,
		publicPath: publicPath,
	}
}

// Dir returns the directory uploads are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// PublicPath returns the URL path prefix uploads are served under.
func (s *Store) PublicPath() string {
	return s.publicPath
}

// Save stores the uploaded file from the given multipart field.
// It returns ErrNoFile when the field carries no file, so callers can decide
// whether the upload was mandatory.
func (s *Store) Save(c *fiber.Ctx, field string) (*File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, ErrNoFile
	}

	if fh.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	if !allowedType(fh) {
		return nil, ErrUnsupportedType
	}

	if err = os.MkdirAll(s.dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := field + "-" + uuid.NewString() + filepath.Ext(fh.Filename)
	diskPath := filepath.Join(s.dir, name)

	if err = c.SaveFile(fh, diskPath); err != nil {
		return nil, fmt.Errorf("failed to save uploaded file: %w", err)
	}

	return &File{
		PublicPath: path.Join(s.publicPath, name),
		DiskPath:   diskPath,
	}, nil
}

// Remove deletes a stored upload. It is used to clean up orphaned files when
// a request fails after its upload was already written; failures are logged
// and otherwise ignored.
func (s *Store) Remove(f *File) {
	if f == nil {
		return
	}

	if err := os.Remove(f.DiskPath); err != nil {
		log.Error().Err(err).Str("path", f.DiskPath).Msg("failed to delete unused upload")
		return
	}

	log.Info().Str("path", f.DiskPath).Msg("deleted unused upload")
}

func allowedType(fh *multipart.FileHeader) bool {
	contentType := fh.Header.Get(fiber.HeaderContentType)

	return strings.HasPrefix(contentType, "image/") || contentType == "application/pdf"
}
