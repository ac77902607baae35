package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/superrjump/extractor/pkg/models"
)

// JSONExporter writes the extraction as indented JSON, the format consumed
// by the assessment backend.
type JSONExporter struct{}

func (e *JSONExporter) Export(extraction *models.Extraction, filename string) error {
	data, err := json.MarshalIndent(extraction, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal extraction: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
