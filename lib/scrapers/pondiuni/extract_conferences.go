package pondiuni

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// conferenceVariant maps one conference/seminar table shape onto the
// shared entry. Extra names the optional columns that follow the
// sno+title+dates+level core, in column order.
type conferenceVariant struct {
	kind  ConferenceKind
	sig   Signature
	extra []string
}

var conferenceVariants = []conferenceVariant{
	{
		kind: ConferenceELecture,
		sig: Signature{
			Name:            "e-lectures",
			PanelKeywords:   []string{"e-lecture", "e lecture"},
			RequiredHeaders: []string{"title", "date"},
			MinHeaders:      3,
			Position:        -1,
			PanelOnly:       true,
		},
		extra: []string{"venue"},
	},
	{
		kind: ConferenceOnlineEducation,
		sig: Signature{
			Name:            "online education",
			PanelKeywords:   []string{"online education", "mooc", "swayam"},
			RequiredHeaders: []string{"title", "date"},
			MinHeaders:      3,
			Position:        -1,
			PanelOnly:       true,
		},
		extra: []string{"organizedBy"},
	},
	{
		kind: ConferenceInvitedTalk,
		sig: Signature{
			Name:            "invited talks",
			PanelKeywords:   []string{"invited", "guest lecture", "resource person"},
			RequiredHeaders: []string{"title", "date"},
			MinHeaders:      3,
			Position:        -1,
			PanelOnly:       true,
		},
		extra: []string{"venue", "organizedBy"},
	},
	{
		kind: ConferenceOrganized,
		sig: Signature{
			Name:            "conferences organized",
			PanelKeywords:   []string{"conferences organized", "seminars organized", "conference organised", "seminar organised"},
			RequiredHeaders: []string{"title", "date"},
			ExcludedHeaders: []string{"workshop"},
			MinHeaders:      3,
			Position:        -1,
			PanelOnly:       true,
		},
		extra: []string{"venue", "participants", "role"},
	},
	{
		kind: ConferenceWorkshopOrganized,
		sig: Signature{
			Name:            "workshops organized",
			PanelKeywords:   []string{"workshops organized", "workshop organised", "training organized"},
			RequiredHeaders: []string{"title", "date"},
			MinHeaders:      3,
			Position:        -1,
			PanelOnly:       true,
		},
		extra: []string{"venue", "participants", "role"},
	},
}

// ExtractConferenceSeminars returns every conference/seminar activity the
// page lists, across the five table variants, as one tagged list.
func ExtractConferenceSeminars(ctx context.Context, doc *goquery.Document) []ConferenceSeminarEntry {
	out := []ConferenceSeminarEntry{}
	for _, variant := range conferenceVariants {
		match, ok := FindTable(ctx, doc, variant.sig)
		if !ok {
			continue
		}

		fields := 3 + len(variant.extra)
		parser := RowParser{Headers: match.Headers, Fields: fields, Primary: 0}
		for _, row := range parser.Parse(match.Table) {
			entry := ConferenceSeminarEntry{
				Kind:  variant.kind,
				SNo:   row.SNo,
				Title: row.Cells[0],
				Dates: row.Cells[1],
				Level: row.Cells[2],
			}
			for i, name := range variant.extra {
				value := row.Cells[3+i]
				switch name {
				case "venue":
					entry.Venue = value
				case "organizedBy":
					entry.OrganizedBy = value
				case "participants":
					entry.Participants = value
				case "role":
					entry.Role = value
				}
			}
			out = append(out, entry)
		}
	}
	return out
}
