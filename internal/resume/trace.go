package resume

import "log"

// Tracer receives the pipeline's intermediate decisions (detected boundaries,
// discarded entries, recovered extractor failures). It is injected into the
// Parser so the decision trail stays inspectable without a global sink.
type Tracer interface {
	Tracef(format string, args ...interface{})
}

type nopTracer struct{}

func (nopTracer) Tracef(string, ...interface{}) {}

// Nop returns a tracer that discards everything. This is the default.
func Nop() Tracer { return nopTracer{} }

type logTracer struct {
	prefix string
}

func (t logTracer) Tracef(format string, args ...interface{}) {
	log.Printf(t.prefix+format, args...)
}

// Log returns a tracer that writes to the standard logger with the given
// prefix, e.g. Log("[parser] ").
func Log(prefix string) Tracer { return logTracer{prefix: prefix} }
