package pondiuni

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

func projectRows(match TableMatch) []ProjectOrConsultancyEntry {
	out := []ProjectOrConsultancyEntry{}
	parser := RowParser{Headers: match.Headers, Fields: 5, Primary: 0}
	for _, row := range parser.Parse(match.Table) {
		out = append(out, ProjectOrConsultancyEntry{
			SNo:              row.SNo,
			Title:            row.Cells[0],
			SponsoredBy:      row.Cells[1],
			Period:           row.Cells[2],
			SanctionedAmount: row.Cells[3],
			Year:             row.Cells[4],
		})
	}
	return out
}

// ExtractProjects returns sponsored research projects.
func ExtractProjects(ctx context.Context, doc *goquery.Document) []ProjectOrConsultancyEntry {
	match, ok := FindTable(ctx, doc, Signature{
		Name:            "projects",
		PanelKeywords:   []string{"ongoing project", "completed project", "research project", "sponsored project"},
		RequiredHeaders: []string{"title", "sponsor"},
		ExcludedHeaders: []string{"consultanc"},
		MinHeaders:      3,
		Position:        -1,
	})
	if !ok {
		return []ProjectOrConsultancyEntry{}
	}
	return projectRows(match)
}

// ExtractConsultancies returns consultancy assignments, which share the
// project row shape.
func ExtractConsultancies(ctx context.Context, doc *goquery.Document) []ProjectOrConsultancyEntry {
	match, ok := FindTable(ctx, doc, Signature{
		Name:            "consultancies",
		PanelKeywords:   []string{"consultanc"},
		RequiredHeaders: []string{"title", "consultanc"},
		ExcludedHeaders: []string{"sponsored"},
		MinHeaders:      3,
		Position:        -1,
	})
	if !ok {
		return []ProjectOrConsultancyEntry{}
	}
	return projectRows(match)
}
