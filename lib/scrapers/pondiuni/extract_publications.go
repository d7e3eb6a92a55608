package pondiuni

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ExtractInnovations returns innovative work entries: name of work,
// specialization, remarks.
func ExtractInnovations(ctx context.Context, doc *goquery.Document) []InnovationEntry {
	out := []InnovationEntry{}
	match, ok := FindTable(ctx, doc, Signature{
		Name:            "innovations",
		PanelKeywords:   []string{"innovative", "innovation"},
		RequiredHeaders: []string{"work", "specialization"},
		MinHeaders:      2,
		Position:        -1,
	})
	if !ok {
		return out
	}

	parser := RowParser{Headers: match.Headers, Fields: 3, Primary: 0}
	for _, row := range parser.Parse(match.Table) {
		out = append(out, InnovationEntry{
			WorkName:       row.Cells[0],
			Specialization: row.Cells[1],
			Remarks:        row.Cells[2],
		})
	}
	return out
}

// ExtractPatents returns patents: title, status, number, year, type and
// commercialization status.
func ExtractPatents(ctx context.Context, doc *goquery.Document) []PatentEntry {
	out := []PatentEntry{}
	match, ok := FindTable(ctx, doc, Signature{
		Name:            "patents",
		PanelKeywords:   []string{"patent"},
		RequiredHeaders: []string{"title", "status"},
		ExcludedHeaders: []string{"thesis"},
		MinHeaders:      3,
		Position:        -1,
	})
	if !ok {
		return out
	}

	parser := RowParser{Headers: match.Headers, Fields: 6, Primary: 0}
	for _, row := range parser.Parse(match.Table) {
		out = append(out, PatentEntry{
			Title:                row.Cells[0],
			Status:               row.Cells[1],
			PatentNumber:         row.Cells[2],
			YearOfAward:          row.Cells[3],
			Type:                 row.Cells[4],
			CommercializedStatus: row.Cells[5],
		})
	}
	return out
}

func paperRows(match TableMatch) []PaperEntry {
	out := []PaperEntry{}
	parser := RowParser{Headers: match.Headers, Fields: 6, Primary: 0}
	for _, row := range parser.Parse(match.Table) {
		out = append(out, PaperEntry{
			Title:            row.Cells[0],
			Authors:          row.Cells[1],
			JournalName:      row.Cells[2],
			VolumeIssuePages: row.Cells[3],
			Year:             row.Cells[4],
			ImpactFactor:     row.Cells[5],
		})
	}
	return out
}

var journalPaperSignature = Signature{
	Name:            "journal papers",
	PanelKeywords:   []string{"paper", "publication", "journal"},
	RequiredHeaders: []string{"title", "author"},
	ExcludedHeaders: []string{"conference", "isbn", "publisher"},
	MinHeaders:      3,
	Position:        -1,
}

// ExtractPapers returns UGC-listed and other journal papers. The UGC table
// is located first and its node is remembered so the general journal pass
// never double-counts it; the seen set lives only for this one call.
func ExtractPapers(ctx context.Context, doc *goquery.Document) (ugc, other []PaperEntry) {
	ugc = []PaperEntry{}
	other = []PaperEntry{}
	seen := map[*html.Node]bool{}

	ugcSig := journalPaperSignature
	ugcSig.Name = "ugc papers"
	ugcSig.PanelKeywords = []string{"ugc"}
	ugcSig.PanelOnly = true
	if match, ok := FindTable(ctx, doc, ugcSig); ok {
		ugc = paperRows(match)
		for _, n := range match.Table.Nodes {
			seen[n] = true
		}
	}

	for _, match := range FindTables(ctx, doc, journalPaperSignature) {
		if len(match.Table.Nodes) > 0 && seen[match.Table.Nodes[0]] {
			continue
		}
		other = append(other, paperRows(match)...)
	}
	return ugc, other
}

// ExtractConferencePapers returns papers presented at conferences: title,
// authors, conference details, page numbers, year.
func ExtractConferencePapers(ctx context.Context, doc *goquery.Document) []ConferencePaperEntry {
	out := []ConferencePaperEntry{}
	match, ok := FindTable(ctx, doc, Signature{
		Name:            "conference papers",
		PanelKeywords:   []string{"conference paper", "papers presented"},
		RequiredHeaders: []string{"title", "conference"},
		ExcludedHeaders: []string{"impact factor", "journal"},
		MinHeaders:      3,
		Position:        -1,
	})
	if !ok {
		return out
	}

	parser := RowParser{Headers: match.Headers, Fields: 5, Primary: 0}
	for _, row := range parser.Parse(match.Table) {
		out = append(out, ConferencePaperEntry{
			Title:             row.Cells[0],
			Authors:           row.Cells[1],
			ConferenceDetails: row.Cells[2],
			PageNos:           row.Cells[3],
			Year:              row.Cells[4],
		})
	}
	return out
}
