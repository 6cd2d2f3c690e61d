// Package extract recovers plain text from uploaded resume documents. It is
// the upstream boundary of the parsing pipeline: byte-level decoding lives
// here, heuristics live in internal/resume.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"code.sajari.com/docconv"
	pdf "github.com/ledongthuc/pdf"
)

// Service converts document bytes to normalized text. Zero value is ready.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// FromPDF extracts text from PDF bytes using docconv, falling back to a
// direct PDF reader when docconv fails or comes back empty. Scanned PDFs with
// no text layer yield an error, not empty output.
func (s *Service) FromPDF(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	res, err := docconv.Convert(bytes.NewReader(data), "application/pdf", true)
	if err == nil && strings.TrimSpace(res.Body) != "" {
		return Normalize(res.Body), nil
	}
	if err != nil {
		log.Printf("docconv pdf conversion failed, trying fallback reader: %v", err)
	}

	text, ferr := pdfFallback(data)
	if ferr != nil {
		if err != nil {
			return "", fmt.Errorf("pdf extraction failed: %w", err)
		}
		return "", fmt.Errorf("pdf extraction failed: %w", ferr)
	}
	return Normalize(text), nil
}

// FromDocx extracts text from DOCX bytes using docconv.
func (s *Service) FromDocx(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	res, err := docconv.Convert(bytes.NewReader(data),
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document", true)
	if err != nil {
		return "", fmt.Errorf("docx extraction failed: %w", err)
	}
	return Normalize(res.Body), nil
}

func pdfFallback(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", err
	}
	if strings.TrimSpace(buf.String()) == "" {
		return "", errors.New("no text layer found")
	}
	return buf.String(), nil
}
