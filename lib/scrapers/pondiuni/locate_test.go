package pondiuni

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindTablePanelStrategy(t *testing.T) {
	doc := parseDoc(t, `<html><body>
<div class="panel"><div class="panel-heading">Educational Qualification</div>
<table><tr><th>Degree</th><th>University</th><th>Year</th></tr>
<tr><td>Ph.D</td><td>PU</td><td>2005</td></tr></table></div>
</body></html>`)

	match, ok := FindTable(context.Background(), doc, Signature{
		Name:            "education",
		PanelKeywords:   []string{"education"},
		RequiredHeaders: []string{"degree", "university"},
		MinHeaders:      3,
		Position:        -1,
	})
	require.True(t, ok)
	require.Equal(t, StrategyPanel, match.Strategy)
	require.Equal(t, 1.0, match.Confidence)
	require.Equal(t, []string{"Degree", "University", "Year"}, match.Headers)
}

func TestFindTableHeaderStrategy(t *testing.T) {
	// no titled panel anywhere, the header test over the whole document
	// must still find the table
	doc := parseDoc(t, `<html><body>
<table><tr><th>Degree</th><th>University</th><th>Year</th></tr>
<tr><td>Ph.D</td><td>PU</td><td>2005</td></tr></table>
</body></html>`)

	match, ok := FindTable(context.Background(), doc, Signature{
		Name:            "education",
		PanelKeywords:   []string{"education"},
		RequiredHeaders: []string{"degree", "university"},
		MinHeaders:      3,
		Position:        -1,
	})
	require.True(t, ok)
	require.Equal(t, StrategyHeader, match.Strategy)
	require.Equal(t, 0.9, match.Confidence)
}

func TestFindTableExcludedHeaders(t *testing.T) {
	doc := parseDoc(t, `<html><body>
<table><tr><th>Title</th><th>Authors</th><th>Conference Details</th></tr>
<tr><td>A</td><td>B</td><td>C</td></tr></table>
</body></html>`)

	_, ok := FindTable(context.Background(), doc, Signature{
		Name:            "journal papers",
		RequiredHeaders: []string{"title", "author"},
		ExcludedHeaders: []string{"conference"},
		MinHeaders:      3,
		Position:        -1,
	})
	require.False(t, ok)
}

func TestFindTablePositionStrategy(t *testing.T) {
	doc := parseDoc(t, `<html><body>
<table><tr><th>A</th><th>B</th><th>C</th></tr><tr><td>1</td><td>2</td><td>3</td></tr></table>
<table><tr><th>D</th><th>E</th><th>F</th></tr><tr><td>4</td><td>5</td><td>6</td></tr></table>
</body></html>`)

	match, ok := FindTable(context.Background(), doc, Signature{
		Name:            "second",
		RequiredHeaders: []string{"nonexistent header"},
		MinHeaders:      3,
		Position:        1,
	})
	require.True(t, ok)
	require.Equal(t, StrategyPosition, match.Strategy)
	require.Equal(t, []string{"D", "E", "F"}, match.Headers)
}

func TestFindTablePartialStrategy(t *testing.T) {
	// typo'd header text should still rank above the threshold
	doc := parseDoc(t, `<html><body>
<table><tr><th>Degre</th><th>Universty</th><th>Year</th></tr>
<tr><td>Ph.D</td><td>PU</td><td>2005</td></tr></table>
</body></html>`)

	match, ok := FindTable(context.Background(), doc, Signature{
		Name:            "education",
		RequiredHeaders: []string{"degree", "university"},
		MinHeaders:      3,
		Position:        -1,
	})
	require.True(t, ok)
	require.Equal(t, StrategyPartial, match.Strategy)
	require.Less(t, match.Confidence, 0.5)
}

func TestFindTablePanelOnly(t *testing.T) {
	// generic headers must not be claimed without a titled panel
	doc := parseDoc(t, `<html><body>
<table><tr><th>Title</th><th>Dates</th><th>Level</th></tr>
<tr><td>A</td><td>B</td><td>C</td></tr></table>
</body></html>`)

	_, ok := FindTable(context.Background(), doc, Signature{
		Name:            "e-lectures",
		PanelKeywords:   []string{"e-lecture"},
		RequiredHeaders: []string{"title", "date"},
		MinHeaders:      3,
		Position:        -1,
		PanelOnly:       true,
	})
	require.False(t, ok)
}

func TestFindTableNothing(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>no tables here</p></body></html>`)

	_, ok := FindTable(context.Background(), doc, Signature{
		Name:            "education",
		RequiredHeaders: []string{"degree"},
		MinHeaders:      1,
		Position:        -1,
	})
	require.False(t, ok)
}
