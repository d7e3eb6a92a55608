package pondiuni

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// ExtractTeachingExperience returns teaching stints: designation,
// department, institution, duration.
func ExtractTeachingExperience(ctx context.Context, doc *goquery.Document) []ExperienceEntry {
	out := []ExperienceEntry{}
	match, ok := FindTable(ctx, doc, Signature{
		Name:            "teaching experience",
		PanelKeywords:   []string{"teaching experience"},
		RequiredHeaders: []string{"designation", "institution"},
		ExcludedHeaders: []string{"area of research", "company", "nature of work"},
		MinHeaders:      3,
		Position:        -1,
	})
	if !ok {
		return out
	}

	parser := RowParser{Headers: match.Headers, Fields: 4, Primary: 0}
	for _, row := range parser.Parse(match.Table) {
		out = append(out, ExperienceEntry{
			Designation: row.Cells[0],
			Department:  row.Cells[1],
			Institution: row.Cells[2],
			Duration:    row.Cells[3],
		})
	}
	return out
}

// ExtractResearchExperience returns research stints, which carry an area
// of research on top of the teaching shape.
func ExtractResearchExperience(ctx context.Context, doc *goquery.Document) []ExperienceEntry {
	out := []ExperienceEntry{}
	match, ok := FindTable(ctx, doc, Signature{
		Name:            "research experience",
		PanelKeywords:   []string{"research experience"},
		RequiredHeaders: []string{"designation", "area of research"},
		MinHeaders:      3,
		Position:        -1,
	})
	if !ok {
		return out
	}

	parser := RowParser{Headers: match.Headers, Fields: 5, Primary: 0}
	for _, row := range parser.Parse(match.Table) {
		out = append(out, ExperienceEntry{
			Designation:    row.Cells[0],
			Department:     row.Cells[1],
			Institution:    row.Cells[2],
			Duration:       row.Cells[3],
			AreaOfResearch: row.Cells[4],
		})
	}
	return out
}

// ExtractIndustryExperience returns industry stints: company, designation,
// nature of work, duration.
func ExtractIndustryExperience(ctx context.Context, doc *goquery.Document) []ExperienceEntry {
	out := []ExperienceEntry{}
	match, ok := FindTable(ctx, doc, Signature{
		Name:            "industry experience",
		PanelKeywords:   []string{"industrial experience", "industry experience"},
		RequiredHeaders: []string{"company", "nature of work"},
		ExcludedHeaders: []string{"institution"},
		MinHeaders:      3,
		Position:        -1,
	})
	if !ok {
		return out
	}

	parser := RowParser{Headers: match.Headers, Fields: 4, Primary: 1}
	for _, row := range parser.Parse(match.Table) {
		out = append(out, ExperienceEntry{
			Company:      row.Cells[0],
			Designation:  row.Cells[1],
			NatureOfWork: row.Cells[2],
			Duration:     row.Cells[3],
		})
	}
	return out
}
