package resume

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Accepted upload MIME types.
const (
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupportedFileType is returned by ParseResume for any MIME type other
// than PDF or DOCX.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// TextExtractor recovers raw text from uploaded document bytes. Extraction
// failures propagate to the caller of ParseResume untouched.
type TextExtractor interface {
	FromPDF(ctx context.Context, data []byte) (string, error)
	FromDocx(ctx context.Context, data []byte) (string, error)
}

// Parser runs the heuristic extraction pipeline. It holds no per-document
// state: every call processes one text end-to-end, so a single Parser is safe
// for concurrent use.
type Parser struct {
	extractor TextExtractor
	trace     Tracer
}

// Option configures a Parser.
type Option func(*Parser)

// WithTracer injects a tracer for the pipeline's decision trail.
func WithTracer(t Tracer) Option {
	return func(p *Parser) {
		if t != nil {
			p.trace = t
		}
	}
}

// New builds a Parser. The extractor may be nil when only ParseText is used.
func New(extractor TextExtractor, opts ...Option) *Parser {
	p := &Parser{extractor: extractor, trace: Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseResume extracts text from the uploaded file and runs the pipeline.
// Unsupported MIME types and extraction failures are the only fatal errors;
// everything downstream degrades per-field instead of failing the parse.
func (p *Parser) ParseResume(ctx context.Context, fileBuffer []byte, mimeType string) (*ParsedResume, error) {
	var (
		text string
		err  error
	)
	switch mimeType {
	case MimePDF:
		text, err = p.extractor.FromPDF(ctx, fileBuffer)
	case MimeDocx:
		text, err = p.extractor.FromDocx(ctx, fileBuffer)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, mimeType)
	}
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}
	return p.ParseText(text), nil
}

// ParseText runs the synchronous pipeline over already-extracted text. Each
// field extractor is independent; a failure inside one leaves that field
// empty and the rest of the result intact. Personal info runs last because
// job-title guessing reads the extracted experiences.
func (p *Parser) ParseText(text string) *ParsedResume {
	sections := p.SplitIntoSections(text)
	p.trace.Tracef("split into %d sections", len(sections))

	parsed := &ParsedResume{
		Summary:        strings.TrimSpace(sections.Find("summary", "objective", "profile", "about")),
		Experiences:    p.ExtractExperiences(sections.Find("experience", "employment", "work")),
		Education:      p.ExtractEducation(sections.Find("education", "academic")),
		Skills:         p.ExtractSkills(sections.Find("skill", "technologies", "competencies")),
		Projects:       p.ExtractProjects(sections.Find("project", "portfolio")),
		Certifications: p.ExtractCertifications(sections.Find("certif", "license")),
	}
	parsed.PersonalInfo = p.ExtractPersonalInfo(text, parsed)

	p.trace.Tracef("parsed: %d experiences, %d education, %d skills, %d projects, %d certifications",
		len(parsed.Experiences), len(parsed.Education), len(parsed.Skills),
		len(parsed.Projects), len(parsed.Certifications))
	return parsed
}

// recoverExtractor is the per-extractor failure boundary: a panic inside one
// extractor is traced and converted into an empty result for that field only.
func (p *Parser) recoverExtractor(name string, reset func()) {
	if r := recover(); r != nil {
		p.trace.Tracef("%s extractor recovered: %v", name, r)
		if reset != nil {
			reset()
		}
	}
}
