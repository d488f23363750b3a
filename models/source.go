package models

import "fmt"

// Source identifies which upstream catalog a row or field value came from.
type Source string

const (
	// SourcePOS is the point-of-sale export. Its rows carry the most
	// complete column structure, so it seeds merged records when present.
	SourcePOS Source = "pos"
	// SourceWeb is the storefront catalog; its category labels are
	// hand-curated and preferred over the other sources.
	SourceWeb Source = "web"
	// SourceLegacy is the legacy vendor catalog.
	SourceLegacy Source = "legacy"
)

// Order is the fixed source precedence. Scoring ties and base-record
// selection resolve in this order, which keeps merge output deterministic
// across runs.
var Order = []Source{SourcePOS, SourceWeb, SourceLegacy}

// ParseSource maps a config string to a Source.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourcePOS, SourceWeb, SourceLegacy:
		return Source(s), nil
	}
	return "", fmt.Errorf("unknown source %q (want pos, web, or legacy)", s)
}
