package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		} else {
			newStr.WriteRune(' ')
		}
	}
	return newStr.String()
}

// CellText returns the visible text of a selection with non-printable
// characters stripped and inner whitespace collapsed. The source markup
// nests spans and line breaks inside table cells arbitrarily.
func CellText(sel *goquery.Selection) string {
	text := ""
	for _, n := range sel.Nodes {
		text += GetText(n)
	}
	text = removeNonPrintable(text)
	text = strings.Trim(text, " \t\n")
	return innerWhitespace.ReplaceAllString(text, " ")
}

// TableHeaders extracts the header cell texts of a table. It prefers a
// thead row; otherwise it inspects the first two rows and takes whichever
// has more header-looking cells, since the source site sometimes splits a
// colspan'd title row from the real header row.
func TableHeaders(table *goquery.Selection) []string {
	headerRow := table.Find("thead tr").First()
	if headerRow.Length() == 0 {
		first := table.Find("tr").First()
		second := table.Find("tr").Eq(1)
		headerRow = first
		if second.Length() > 0 && second.Find("th").Length() > first.Find("th").Length() {
			headerRow = second
		}
	}

	cells := headerRow.Find("th")
	if cells.Length() == 0 {
		cells = headerRow.Find("td")
	}

	headers := []string{}
	cells.Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, CellText(cell))
	})
	return headers
}

// TableRows returns the data rows of a table, excluding rows that have no
// td cells (header rows that live inside tbody on some pages).
func TableRows(table *goquery.Selection) []*goquery.Selection {
	rows := []*goquery.Selection{}
	body := table.Find("tbody tr")
	if body.Length() == 0 {
		body = table.Find("tr")
	}
	body.Each(func(_ int, row *goquery.Selection) {
		if row.Find("td").Length() == 0 {
			return
		}
		rows = append(rows, row)
	})
	return rows
}
