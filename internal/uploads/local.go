package uploads

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

var (
	ErrNotImage    = errors.New("uploaded file is not an image")
	ErrBadFilename = errors.New("invalid upload filename")
)

// Storage keeps uploaded images in a local directory, keyed by the client
// filename. A name collision overwrites the previous file: last write wins.
type Storage struct {
	dir string
	log *zap.SugaredLogger
}

// NewStorage creates the upload directory if needed.
func NewStorage(dir string, log *zap.SugaredLogger) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Storage{dir: dir, log: log}, nil
}

// SaveImage stores the uploaded file under its client filename after
// verifying that the content is an image. Returns the stored filename.
func (s *Storage) SaveImage(src io.ReadSeeker, filename string) (string, error) {
	name, err := cleanName(filename)
	if err != nil {
		return "", err
	}

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", ErrNotImage
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	s.log.Infow("image stored", "filename", name, "mime", mtype.String())
	return name, nil
}

// Path resolves a stored filename to its on-disk path. Names that would
// escape the upload directory are rejected.
func (s *Storage) Path(filename string) (string, error) {
	name, err := cleanName(filename)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

func cleanName(filename string) (string, error) {
	name := filepath.Base(filepath.Clean(filename))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return "", ErrBadFilename
	}
	return name, nil
}
