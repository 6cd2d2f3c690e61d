package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"resume-extractor/internal/extract"
	"resume-extractor/internal/resume"
)

// parse_file runs the extraction pipeline against a local resume and prints
// the result as JSON. Useful for tuning the heuristics against real resumes
// without standing up the API.
func main() {
	var path string
	var trace bool
	flag.StringVar(&path, "file", "", "Path to a .pdf, .docx or .txt resume")
	flag.BoolVar(&trace, "trace", false, "Log every heuristic decision")
	flag.Parse()

	if path == "" {
		log.Fatal("usage: parse_file -file resume.pdf [-trace]")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read file: %v", err)
	}

	opts := []resume.Option{}
	if trace {
		opts = append(opts, resume.WithTracer(resume.Log("[parser] ")))
	}
	parser := resume.New(extract.NewService(), opts...)

	var parsed *resume.ParsedResume
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		parsed, err = parser.ParseResume(context.Background(), data, resume.MimePDF)
	case ".docx":
		parsed, err = parser.ParseResume(context.Background(), data, resume.MimeDocx)
	case ".txt":
		parsed = parser.ParseText(extract.Normalize(string(data)))
	default:
		log.Fatalf("unsupported extension: %s", filepath.Ext(path))
	}
	if err != nil {
		log.Fatalf("parse failed: %v", err)
	}

	out, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}
