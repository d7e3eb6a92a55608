package pondiuni

import (
	"regexp"

	"facultyhub-backend/lib/htmlutil"
	"facultyhub-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// Serial numbers are short; a 4-digit numeric first cell is a year, not
// an S.No column.
var serialRegex = regexp.MustCompile(`^\d{1,3}\.?$`)
var numericRegex = regexp.MustCompile(`^\d+\.?$`)

// RowParser converts a classified table's rows into offset-adjusted cell
// lists. The leading serial-number column is optional in the source
// markup and its presence must be decided per row, not per table.
type RowParser struct {
	// Headers of the classified table, used for the header-leakage guard.
	Headers []string
	// Fields is the expected number of data columns excluding the serial.
	Fields int
	// Primary is the index (within Fields) of the field that must be
	// non-empty and must not equal a header label.
	Primary int
}

type ParsedRow struct {
	SNo string
	// Cells always has length Fields; columns beyond the available cell
	// count default to the empty string.
	Cells []string
}

func (p RowParser) isHeaderLeak(text string) bool {
	normalized := textutil.Normalize(text)
	if normalized == "" || normalized == "s.no" || normalized == "sno" || normalized == "s.no." {
		return true
	}
	for _, h := range p.Headers {
		if normalized == textutil.Normalize(h) {
			return true
		}
	}
	return false
}

// Parse returns the table's well-formed rows in document order. Malformed
// rows are skipped, never propagated as errors.
func (p RowParser) Parse(table *goquery.Selection) []ParsedRow {
	out := []ParsedRow{}
	for _, row := range htmlutil.TableRows(table) {
		sno := htmlutil.CellText(row.Find("th[scope=row]").First())

		cells := []string{}
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, htmlutil.CellText(cell))
		})

		if sno == "" && len(cells) > 1 {
			first := cells[0]
			// a surplus numeric first column, or a short ordinal, is the
			// serial column
			if (len(cells) > p.Fields && numericRegex.MatchString(first)) ||
				serialRegex.MatchString(first) {
				sno = first
				cells = cells[1:]
			}
		}

		for len(cells) < p.Fields {
			cells = append(cells, "")
		}
		cells = cells[:p.Fields]

		if p.Primary >= 0 && p.Primary < p.Fields && p.isHeaderLeak(cells[p.Primary]) {
			continue
		}

		out = append(out, ParsedRow{SNo: sno, Cells: cells})
	}
	return out
}
