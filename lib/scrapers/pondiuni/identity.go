package pondiuni

import (
	"regexp"
	"strings"

	"facultyhub-backend/lib/htmlutil"
	"facultyhub-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

var emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// labeledValue scans label/value pairs laid out as two-cell table rows or
// as a bolded label followed by text, and returns the value for the first
// matching label.
func labeledValue(doc *goquery.Document, labels []string) string {
	value := ""
	doc.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("th, td")
		if cells.Length() < 2 {
			return true
		}
		if textutil.MatchAny(htmlutil.CellText(cells.First()), labels) {
			value = htmlutil.CellText(cells.Eq(1))
			return value == ""
		}
		return true
	})
	if value != "" {
		return value
	}

	doc.Find("strong, b, label, dt").EachWithBreak(func(_ int, label *goquery.Selection) bool {
		if !textutil.MatchAny(htmlutil.CellText(label), labels) {
			return true
		}
		if goquery.NodeName(label) == "dt" {
			value = htmlutil.CellText(label.Next())
		} else {
			text := htmlutil.CellText(label.Parent())
			if i := strings.Index(text, ":"); i >= 0 {
				value = strings.TrimSpace(text[i+1:])
			}
		}
		return value == ""
	})
	return value
}

// ExtractName returns the faculty member's name from the page title
// heading, falling back to the labeled layout.
func ExtractName(doc *goquery.Document) string {
	for _, selector := range []string{"h1.page-title", ".page-header h1", "#page-title", "h1"} {
		name := htmlutil.CellText(doc.Find(selector).First())
		if name != "" && !textutil.MatchAny(name, []string{"page not found", "access denied"}) {
			return name
		}
	}
	return labeledValue(doc, []string{"name of the faculty", "faculty name", "name"})
}

func ExtractDesignation(doc *goquery.Document) string {
	return labeledValue(doc, []string{"designation"})
}

func ExtractDepartment(doc *goquery.Document) string {
	return labeledValue(doc, []string{"department", "centre"})
}

func ExtractSchool(doc *goquery.Document) string {
	return labeledValue(doc, []string{"school"})
}

// ExtractEmail prefers a mailto link and falls back to scanning the
// labeled layout, then the whole document text.
func ExtractEmail(doc *goquery.Document) string {
	email := ""
	doc.Find("a[href^='mailto:']").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, _ := link.Attr("href")
		email = strings.TrimSpace(strings.TrimPrefix(href, "mailto:"))
		return email == ""
	})
	if email != "" {
		return email
	}
	if labeled := labeledValue(doc, []string{"email", "e-mail"}); labeled != "" {
		if m := emailRegex.FindString(labeled); m != "" {
			return m
		}
		return labeled
	}
	return emailRegex.FindString(doc.Text())
}

// ExtractProfileImageURL returns the profile photo source. Site chrome
// images (logos, icons) are skipped by requiring the image to sit inside
// the content region.
func ExtractProfileImageURL(doc *goquery.Document) string {
	src := ""
	doc.Find(".content img, #content img, .region-content img, article img, img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		candidate, ok := img.Attr("src")
		if !ok {
			return true
		}
		lower := strings.ToLower(candidate)
		if strings.Contains(lower, "logo") || strings.Contains(lower, "icon") || strings.Contains(lower, "banner") {
			return true
		}
		src = candidate
		return false
	})
	return src
}

// ExtractSpecialization returns the comma-separated specialization list.
func ExtractSpecialization(doc *goquery.Document) []string {
	return textutil.SplitList(labeledValue(doc, []string{"specialization", "specialisation"}))
}

// ExtractResearchInterests returns the comma-separated research interest
// list.
func ExtractResearchInterests(doc *goquery.Document) []string {
	return textutil.SplitList(labeledValue(doc, []string{"research interest", "areas of research", "area of interest"}))
}
