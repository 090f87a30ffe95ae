package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	pdf "github.com/ledongthuc/pdf"
)

// Failure classes of a single extraction attempt.
var (
	ErrInvalidFormat   = errors.New("only PDF files are allowed")
	ErrOversizeInput   = errors.New("file too large")
	ErrDecodeFailure   = errors.New("failed to parse PDF")
	ErrEmptyExtraction = errors.New("no text could be extracted from the PDF")
)

const defaultMaxBytes = 10 << 20 // 10MB

// Service stages an uploaded document on disk, decodes it to plain text and
// removes the staged file before returning, on success and failure alike.
type Service struct {
	maxBytes   int64
	stagingDir string
}

func NewService(maxBytes int64, stagingDir string) *Service {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	if stagingDir == "" {
		stagingDir = "uploads"
	}
	return &Service{maxBytes: maxBytes, stagingDir: stagingDir}
}

// MaxBytes reports the configured upload size limit.
func (s *Service) MaxBytes() int64 { return s.maxBytes }

// Extract validates the document, decodes it and returns trimmed non-empty text.
func (s *Service) Extract(filename, contentType string, data []byte) (string, error) {
	if !isPDF(filename, contentType) {
		return "", fmt.Errorf("%w, received: %s", ErrInvalidFormat, contentType)
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrOversizeInput, s.maxBytes)
	}

	if err := os.MkdirAll(s.stagingDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare staging dir: %w", err)
	}
	staged := filepath.Join(s.stagingDir, uuid.New().String()+".pdf")
	if err := os.WriteFile(staged, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to stage file: %w", err)
	}
	defer func() {
		if err := os.Remove(staged); err != nil {
			// Cleanup failure must not mask the extraction outcome.
			log.Printf("extract: failed to remove staged file %s: %v", staged, err)
		}
	}()

	text, err := decodePlainText(staged)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyExtraction
	}
	return text, nil
}

func isPDF(filename, contentType string) bool {
	return contentType == "application/pdf" ||
		contentType == "application/x-pdf" ||
		strings.HasSuffix(strings.ToLower(filename), ".pdf")
}

func decodePlainText(path string) (text string, err error) {
	// The decoder panics on some malformed inputs; report those as errors.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return buf.String(), nil
}
