// Package report writes extraction results to disk in the supported output
// formats.
package report

import (
	"fmt"

	"github.com/superrjump/extractor/pkg/models"
)

// Exporter writes one extraction to a file in a specific format.
type Exporter interface {
	Export(extraction *models.Extraction, filename string) error
}

// ForFormat returns the exporter for a format name.
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "csv":
		return &CSVExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
