package pondiuni

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRowParser(t *testing.T) {
	testCases := []struct {
		name     string
		html     string
		parser   RowParser
		expected []ParsedRow
	}{
		{
			name: "surplus numeric first cell is the serial",
			html: `<table>
<tr><th>S.No</th><th>A</th><th>B</th></tr>
<tr><td>1</td><td>x</td><td>y</td></tr>
</table>`,
			parser: RowParser{Headers: []string{"S.No", "A", "B"}, Fields: 2, Primary: 0},
			expected: []ParsedRow{
				{SNo: "1", Cells: []string{"x", "y"}},
			},
		},
		{
			name: "th scope=row serial",
			html: `<table>
<tr><th>S.No</th><th>A</th><th>B</th></tr>
<tr><th scope="row">3</th><td>x</td><td>y</td></tr>
</table>`,
			parser: RowParser{Headers: []string{"S.No", "A", "B"}, Fields: 2, Primary: 0},
			expected: []ParsedRow{
				{SNo: "3", Cells: []string{"x", "y"}},
			},
		},
		{
			name: "four digit year is data, not a serial",
			html: `<table>
<tr><th>Year</th><th>Degree</th></tr>
<tr><td>2019</td><td>M.Tech</td></tr>
</table>`,
			parser: RowParser{Headers: []string{"Year", "Degree"}, Fields: 2, Primary: 1},
			expected: []ParsedRow{
				{SNo: "", Cells: []string{"2019", "M.Tech"}},
			},
		},
		{
			name: "short ordinal with trailing dot is a serial even without surplus",
			html: `<table>
<tr><th>A</th><th>B</th></tr>
<tr><td>2.</td><td>x</td><td>y</td></tr>
</table>`,
			parser: RowParser{Headers: []string{"A", "B"}, Fields: 2, Primary: 0},
			expected: []ParsedRow{
				{SNo: "2.", Cells: []string{"x", "y"}},
			},
		},
		{
			name: "short rows pad with empty strings",
			html: `<table>
<tr><th>A</th><th>B</th><th>C</th></tr>
<tr><td>x</td></tr>
</table>`,
			parser: RowParser{Headers: []string{"A", "B", "C"}, Fields: 3, Primary: 0},
			expected: []ParsedRow{
				{SNo: "", Cells: []string{"x", "", ""}},
			},
		},
		{
			name: "header leakage rows are dropped",
			html: `<table>
<tr><th>Degree</th><th>University</th></tr>
<tr><td>Degree</td><td>University</td></tr>
<tr><td>S.No</td><td>whatever</td></tr>
<tr><td></td><td>w</td></tr>
<tr><td>Ph.D</td><td>PU</td></tr>
</table>`,
			parser: RowParser{Headers: []string{"Degree", "University"}, Fields: 2, Primary: 0},
			expected: []ParsedRow{
				{SNo: "", Cells: []string{"Ph.D", "PU"}},
			},
		},
		{
			name: "title first cell without serial column keeps its position",
			html: `<table>
<tr><th>Title</th><th>Authors</th><th>Publisher</th><th>Year</th><th>ISBN</th></tr>
<tr><td>Trends in Computing</td><td>Eds.</td><td>Narosa</td><td>2013</td><td>978</td></tr>
</table>`,
			parser: RowParser{Headers: []string{"Title", "Authors", "Publisher", "Year", "ISBN"}, Fields: 5, Primary: 0},
			expected: []ParsedRow{
				{SNo: "", Cells: []string{"Trends in Computing", "Eds.", "Narosa", "2013", "978"}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := parseDoc(t, "<html><body>"+tc.html+"</body></html>")
			table := doc.Find("table").First()
			require.Equal(t, 1, table.Length())

			got := tc.parser.Parse(table)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
