package pondiuni

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// ExtractEducation returns the educational qualification rows:
// degree, title, university, year of graduation.
func ExtractEducation(ctx context.Context, doc *goquery.Document) []EducationEntry {
	out := []EducationEntry{}
	match, ok := FindTable(ctx, doc, Signature{
		Name:            "education",
		PanelKeywords:   []string{"education", "qualification"},
		RequiredHeaders: []string{"degree", "university"},
		ExcludedHeaders: []string{"experience", "award"},
		MinHeaders:      3,
		Position:        -1,
	})
	if !ok {
		return out
	}

	parser := RowParser{Headers: match.Headers, Fields: 4, Primary: 0}
	for _, row := range parser.Parse(match.Table) {
		out = append(out, EducationEntry{
			Degree:         row.Cells[0],
			Title:          row.Cells[1],
			University:     row.Cells[2],
			GraduationYear: row.Cells[3],
		})
	}
	return out
}

// ExtractAwards returns honours and awards: title, type, awarding agency,
// year and amount.
func ExtractAwards(ctx context.Context, doc *goquery.Document) []AwardEntry {
	out := []AwardEntry{}
	match, ok := FindTable(ctx, doc, Signature{
		Name:            "awards",
		PanelKeywords:   []string{"award", "honour", "honor", "recognition"},
		RequiredHeaders: []string{"title", "agency"},
		ExcludedHeaders: []string{"patent", "fellowship"},
		MinHeaders:      3,
		Position:        -1,
	})
	if !ok {
		return out
	}

	parser := RowParser{Headers: match.Headers, Fields: 5, Primary: 0}
	for _, row := range parser.Parse(match.Table) {
		out = append(out, AwardEntry{
			Title:  row.Cells[0],
			Type:   row.Cells[1],
			Agency: row.Cells[2],
			Year:   row.Cells[3],
			Amount: row.Cells[4],
		})
	}
	return out
}
