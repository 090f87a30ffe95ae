package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/pranathimaddineni/portfolio/api/http/presenter"
	"github.com/pranathimaddineni/portfolio/pkg/extract"
)

// UploadHandler accepts a resume PDF and returns its extracted text. The
// document is never kept past the request; the client caches the text.
type UploadHandler struct {
	svc *extract.Service
}

func NewUploadHandler(svc *extract.Service) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Upload handles a multipart resume upload and returns the extracted text.
// @Summary Upload a resume and extract its text
// @Description Accepts a PDF file in the "resume" form field, extracts plain text and returns it. The file is staged only for the duration of the request.
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   resume formData file true "Resume file (PDF, max 10MB)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "No file uploaded. Please select a PDF file.")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.svc.MaxBytes())
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	text, err := h.svc.Extract(fh.Filename, fh.Header.Get("Content-Type"), data)
	switch {
	case err == nil:
		return presenter.JSON(c, http.StatusOK, fiber.Map{"text": text})
	case errors.Is(err, extract.ErrInvalidFormat), errors.Is(err, extract.ErrOversizeInput):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	default:
		// Decode failure or image-only PDF: a processing failure, not bad input.
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
