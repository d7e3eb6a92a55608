package pondiuni

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// ExtractResearchGuidance returns PG, PhD and post-doctoral supervision
// rows as one tagged list. Each variant has its own table shape; the Kind
// field records which one a row came from.
func ExtractResearchGuidance(ctx context.Context, doc *goquery.Document) []ResearchGuidanceEntry {
	out := []ResearchGuidanceEntry{}

	if match, ok := FindTable(ctx, doc, Signature{
		Name:            "pg guidance",
		PanelKeywords:   []string{"pg projects", "pg guidance", "m.phil"},
		RequiredHeaders: []string{"degree", "awarded"},
		ExcludedHeaders: []string{"thesis", "scholar"},
		MinHeaders:      3,
		Position:        -1,
	}); ok {
		parser := RowParser{Headers: match.Headers, Fields: 4, Primary: 1}
		for _, row := range parser.Parse(match.Table) {
			out = append(out, ResearchGuidanceEntry{
				Kind:            GuidancePG,
				Year:            row.Cells[0],
				Degree:          row.Cells[1],
				StudentsAwarded: row.Cells[2],
				Department:      row.Cells[3],
			})
		}
	}

	if match, ok := FindTable(ctx, doc, Signature{
		Name:            "phd guidance",
		PanelKeywords:   []string{"ph.d", "phd"},
		RequiredHeaders: []string{"name", "thesis"},
		ExcludedHeaders: []string{"fellowship"},
		MinHeaders:      4,
		Position:        -1,
	}); ok {
		parser := RowParser{Headers: match.Headers, Fields: 8, Primary: 0}
		for _, row := range parser.Parse(match.Table) {
			out = append(out, ResearchGuidanceEntry{
				Kind:                    GuidancePhD,
				StudentName:             row.Cells[0],
				RegistrationDate:        row.Cells[1],
				RegistrationNo:          row.Cells[2],
				ThesisTitle:             row.Cells[3],
				ThesisSubmittedStatus:   row.Cells[4],
				ThesisSubmittedDate:     row.Cells[5],
				VivaVoceCompletedStatus: row.Cells[6],
				DateAwarded:             row.Cells[7],
			})
		}
	}

	if match, ok := FindTable(ctx, doc, Signature{
		Name:            "postdoc guidance",
		PanelKeywords:   []string{"post doctoral", "post-doctoral", "postdoctoral"},
		RequiredHeaders: []string{"scholar", "fellowship"},
		MinHeaders:      3,
		Position:        -1,
	}); ok {
		parser := RowParser{Headers: match.Headers, Fields: 6, Primary: 0}
		for _, row := range parser.Parse(match.Table) {
			out = append(out, ResearchGuidanceEntry{
				Kind:             GuidancePostDoc,
				ScholarName:      row.Cells[0],
				Designation:      row.Cells[1],
				FundingAgency:    row.Cells[2],
				FellowshipTitle:  row.Cells[3],
				YearOfJoining:    row.Cells[4],
				YearOfCompletion: row.Cells[5],
			})
		}
	}

	return out
}
