// Package upload keeps ticket attachment files on local disk.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/constants"
	apperrors "github.com/chamados/servicedesk/internal/shared/errors"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

// allowedTypes maps each accepted extension to its canonical content type.
var allowedTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".pdf":  "application/pdf",
}

// declaredAliases are client-declared types accepted for a canonical type.
var declaredAliases = map[string]string{
	"image/jpeg":      "image/jpeg",
	"image/jpg":       "image/jpeg",
	"image/pjpeg":     "image/jpeg",
	"image/png":       "image/png",
	"application/pdf": "application/pdf",
}

// File is one incoming upload as received from a multipart form.
type File struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

type Store struct {
	dir      string
	maxBytes int64
	maxFiles int
	clock    clock.Clock
	logger   logger.Interface
}

func NewStore(dir string, maxBytes int64, maxFiles int, clk clock.Clock, log logger.Interface) *Store {
	return &Store{
		dir:      dir,
		maxBytes: maxBytes,
		maxFiles: maxFiles,
		clock:    clk,
		logger:   log,
	}
}

func (s *Store) Dir() string {
	return s.dir
}

// Save validates every file before writing any of them. If a write fails, files already written
// by this call are removed.
func (s *Store) Save(ctx context.Context, files []File, uploader string) ([]ticket.Attachment, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > s.maxFiles {
		return nil, apperrors.NewValidationError("too many files",
			fmt.Sprintf("at most %d files per request", s.maxFiles))
	}

	type accepted struct {
		file File
		ext  string
		data []byte
	}
	ready := make([]accepted, 0, len(files))
	for _, f := range files {
		ext, data, err := s.check(f)
		if err != nil {
			return nil, err
		}
		ready = append(ready, accepted{file: f, ext: ext, data: data})
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	attachments := make([]ticket.Attachment, 0, len(ready))
	for _, r := range ready {
		if err := ctx.Err(); err != nil {
			s.discard(attachments)
			return nil, err
		}

		now := s.clock.Now()
		stored := strconv.FormatInt(now.UnixMilli(), 10) + "-" + uuid.NewString() + r.ext
		if err := os.WriteFile(filepath.Join(s.dir, stored), r.data, 0o644); err != nil {
			s.discard(attachments)
			return nil, fmt.Errorf("write upload %s: %w", stored, err)
		}

		attachments = append(attachments, ticket.Attachment{
			OriginalName: filepath.Base(r.file.Filename),
			StoredName:   stored,
			Path:         constants.UploadsPathPrefix + stored,
			UploadedAt:   now,
			UploadedBy:   uploader,
		})
	}

	s.logger.Infow("attachments stored", "count", len(attachments), "uploaded_by", uploader)
	return attachments, nil
}

// check returns the lowercased extension and the file content once the extension, the declared
// type and the sniffed type all agree.
func (s *Store) check(f File) (string, []byte, error) {
	ext := strings.ToLower(filepath.Ext(f.Filename))
	want, ok := allowedTypes[ext]
	if !ok {
		return "", nil, invalidType(f.Filename)
	}

	declared := strings.ToLower(strings.TrimSpace(strings.Split(f.ContentType, ";")[0]))
	if declaredAliases[declared] != want {
		return "", nil, invalidType(f.Filename)
	}

	if f.Size > s.maxBytes {
		return "", nil, tooLarge(f.Filename, s.maxBytes)
	}

	rc, err := f.Open()
	if err != nil {
		return "", nil, fmt.Errorf("open upload %s: %w", f.Filename, err)
	}
	defer rc.Close()

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(rc, s.maxBytes+1))
	if err != nil {
		return "", nil, fmt.Errorf("read upload %s: %w", f.Filename, err)
	}
	if n > s.maxBytes {
		return "", nil, tooLarge(f.Filename, s.maxBytes)
	}

	if !mimetype.Detect(buf.Bytes()).Is(want) {
		return "", nil, invalidType(f.Filename)
	}
	return ext, buf.Bytes(), nil
}

// Remove deletes a stored file. A file that is already gone is not an error.
func (s *Store) Remove(storedName string) error {
	if storedName == "" || filepath.Base(storedName) != storedName {
		return apperrors.NewValidationError("invalid stored file name", storedName)
	}
	err := os.Remove(filepath.Join(s.dir, storedName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove upload %s: %w", storedName, err)
	}
	return nil
}

// RemoveAll deletes every listed file, logging instead of failing on individual errors.
func (s *Store) RemoveAll(attachments []ticket.Attachment) {
	for _, a := range attachments {
		if err := s.Remove(a.StoredName); err != nil {
			s.logger.Warnw("failed to remove attachment file", "stored_name", a.StoredName, "error", err)
		}
	}
}

func (s *Store) discard(written []ticket.Attachment) {
	s.RemoveAll(written)
}

func invalidType(name string) error {
	return apperrors.NewValidationError("only JPG, PNG or PDF files are allowed", filepath.Base(name))
}

func tooLarge(name string, limit int64) error {
	return apperrors.NewValidationError("file too large",
		fmt.Sprintf("%s exceeds %d MB", filepath.Base(name), limit>>20))
}
