package output

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/retplan/retplan/internal/domain"
	"github.com/retplan/retplan/internal/portfolio"
)

// Version is stamped into JSON exports. Set from the build via ldflags.
var Version = "dev"

// jsonSnapshot is the export envelope: metadata plus the projection and the
// optional portfolio analysis.
type jsonSnapshot struct {
	Metadata  snapshotMetadata        `json:"metadata"`
	Result    domain.ProjectionResult `json:"result"`
	Portfolio *portfolio.Analysis     `json:"portfolio,omitempty"`
}

type snapshotMetadata struct {
	ExportDate string `json:"exportDate"`
	Version    string `json:"version"`
	Tool       string `json:"tool"`
}

// GenerateJSONReport writes the projection as an indented JSON snapshot.
func (rg *ReportGenerator) GenerateJSONReport(result domain.ProjectionResult, analysis *portfolio.Analysis) error {
	snapshot := jsonSnapshot{
		Metadata: snapshotMetadata{
			ExportDate: time.Now().UTC().Format(time.RFC3339),
			Version:    Version,
			Tool:       "retplan",
		},
		Result:    result,
		Portfolio: analysis,
	}

	enc := json.NewEncoder(rg.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}
