package pondiuni

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

func bookRows(match TableMatch) []BookEntry {
	out := []BookEntry{}
	parser := RowParser{Headers: match.Headers, Fields: 5, Primary: 0}
	for _, row := range parser.Parse(match.Table) {
		out = append(out, BookEntry{
			SNo:       row.SNo,
			Title:     row.Cells[0],
			Authors:   row.Cells[1],
			Publisher: row.Cells[2],
			Year:      row.Cells[3],
			ISBN:      row.Cells[4],
		})
	}
	return out
}

// ExtractAuthoredBooks returns books written by the faculty member.
func ExtractAuthoredBooks(ctx context.Context, doc *goquery.Document) []BookEntry {
	match, ok := FindTable(ctx, doc, Signature{
		Name:            "authored books",
		PanelKeywords:   []string{"books published", "books authored", "books written"},
		RequiredHeaders: []string{"title", "publisher"},
		ExcludedHeaders: []string{"edited", "chapter"},
		MinHeaders:      3,
		Position:        -1,
	})
	if !ok {
		return []BookEntry{}
	}
	return bookRows(match)
}

// ExtractEditedBooks returns edited volumes and book chapters.
func ExtractEditedBooks(ctx context.Context, doc *goquery.Document) []BookEntry {
	match, ok := FindTable(ctx, doc, Signature{
		Name:            "edited books",
		PanelKeywords:   []string{"books edited", "edited books", "chapters"},
		RequiredHeaders: []string{"title", "publisher", "edited"},
		MinHeaders:      3,
		Position:        -1,
	})
	if !ok {
		return []BookEntry{}
	}
	return bookRows(match)
}
