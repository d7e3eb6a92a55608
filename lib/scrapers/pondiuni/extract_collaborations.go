package pondiuni

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

type collaborationVariant struct {
	kind CollaborationKind
	sig  Signature
}

var collaborationVariants = []collaborationVariant{
	{
		kind: CollaborationAcademicAdmin,
		sig: Signature{
			Name:            "academic administration",
			PanelKeywords:   []string{"academic administration", "administrative"},
			RequiredHeaders: []string{"position", "period"},
			MinHeaders:      2,
			Position:        -1,
			PanelOnly:       true,
		},
	},
	{
		kind: CollaborationCoCurricular,
		sig: Signature{
			Name:            "co-curricular activities",
			PanelKeywords:   []string{"co-curricular", "extension activities"},
			RequiredHeaders: []string{"activity", "period"},
			MinHeaders:      2,
			Position:        -1,
			PanelOnly:       true,
		},
	},
	{
		kind: CollaborationInstitutional,
		sig: Signature{
			Name:            "institutional collaboration",
			PanelKeywords:   []string{"collaboration", "mou", "linkage"},
			RequiredHeaders: []string{"institution", "nature"},
			MinHeaders:      2,
			Position:        -1,
			PanelOnly:       true,
		},
	},
}

// ExtractCollaborations returns academic-administration positions,
// co-curricular activities and institutional collaborations as one tagged
// list.
func ExtractCollaborations(ctx context.Context, doc *goquery.Document) []CollaborationEntry {
	out := []CollaborationEntry{}
	for _, variant := range collaborationVariants {
		match, ok := FindTable(ctx, doc, variant.sig)
		if !ok {
			continue
		}

		parser := RowParser{Headers: match.Headers, Fields: 5, Primary: 0}
		for _, row := range parser.Parse(match.Table) {
			entry := CollaborationEntry{
				Kind:   variant.kind,
				SNo:    row.SNo,
				Title:  row.Cells[0],
				Period: row.Cells[1],
			}
			switch variant.kind {
			case CollaborationInstitutional:
				entry.Institution = row.Cells[2]
				entry.Nature = row.Cells[3]
				entry.Details = row.Cells[4]
			default:
				entry.Details = row.Cells[2]
			}
			out = append(out, entry)
		}
	}
	return out
}
