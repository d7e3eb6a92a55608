package pondiuni

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

type programmeVariant struct {
	kind ProgrammeKind
	sig  Signature
}

var programmeVariants = []programmeVariant{
	{
		kind: ProgrammeFacultyDevelopment,
		sig: Signature{
			Name:            "faculty development programmes",
			PanelKeywords:   []string{"faculty development", "fdp", "orientation", "refresher"},
			RequiredHeaders: []string{"title", "date"},
			MinHeaders:      3,
			Position:        -1,
			PanelOnly:       true,
		},
	},
	{
		kind: ProgrammeExecutiveDevelopment,
		sig: Signature{
			Name:            "executive development programmes",
			PanelKeywords:   []string{"executive development", "edp", "management development"},
			RequiredHeaders: []string{"title", "date"},
			MinHeaders:      3,
			Position:        -1,
			PanelOnly:       true,
		},
	},
	{
		kind: ProgrammeSpecial,
		sig: Signature{
			Name:            "special programmes",
			PanelKeywords:   []string{"special programme", "special program", "outreach programme"},
			RequiredHeaders: []string{"title", "date"},
			MinHeaders:      3,
			Position:        -1,
			PanelOnly:       true,
		},
	},
	{
		kind: ProgrammeARPIT,
		sig: Signature{
			Name:            "arpit programmes",
			PanelKeywords:   []string{"arpit"},
			RequiredHeaders: []string{"title", "date"},
			MinHeaders:      3,
			Position:        -1,
			PanelOnly:       true,
		},
	},
}

// ExtractProgrammes returns the training/development programme rows across
// the four table variants as one tagged list.
func ExtractProgrammes(ctx context.Context, doc *goquery.Document) []ProgrammeEntry {
	out := []ProgrammeEntry{}
	for _, variant := range programmeVariants {
		match, ok := FindTable(ctx, doc, variant.sig)
		if !ok {
			continue
		}

		parser := RowParser{Headers: match.Headers, Fields: 5, Primary: 0}
		for _, row := range parser.Parse(match.Table) {
			out = append(out, ProgrammeEntry{
				Kind:         variant.kind,
				SNo:          row.SNo,
				Title:        row.Cells[0],
				Dates:        row.Cells[1],
				Venue:        row.Cells[2],
				Participants: row.Cells[3],
				Role:         row.Cells[4],
			})
		}
	}
	return out
}
