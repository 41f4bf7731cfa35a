package prdcompiler

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullInput() string {
	var sb strings.Builder
	sb.WriteString("Product Requirements Document: Test Project\n\n")
	for i, title := range DefaultSectionTitles {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, title)
		fmt.Fprintf(&sb, "Body text for section %d.\n\n", i+1)
	}
	return sb.String()
}

func TestParseRoundTrip(t *testing.T) {
	doc := Parse(fullInput())

	require.Len(t, doc.Sections, len(DefaultSectionTitles))
	for i, sec := range doc.Sections {
		assert.Equal(t, i+1, sec.Number)
		assert.False(t, sec.Placeholder, "section %d should be found", i+1)
		assert.Equal(t, DefaultSectionTitles[i], sec.Title)
		assert.Equal(t, fmt.Sprintf("Body text for section %d.", i+1), sec.Body,
			"marker line must be stripped from section %d body", i+1)
	}
}

func TestParseAlwaysReturnsFullCatalog(t *testing.T) {
	for _, input := range []string{
		"",
		"lorem ipsum no markers",
		"random text\nwith lines\n\nand paragraphs",
	} {
		doc := Parse(input)
		require.Len(t, doc.Sections, 16, "input %q", input)
		for i, sec := range doc.Sections {
			assert.True(t, sec.Placeholder)
			assert.Equal(t, DefaultSectionTitles[i], sec.Title)
			assert.Empty(t, sec.Body)
			assert.Empty(t, sec.Subsections)
		}
	}
}

func TestParseSubsections(t *testing.T) {
	input := "1. Introduction\n" +
		"1.1 Purpose\n" +
		"Why we build this.\n" +
		"1.2 Scope\n" +
		"What is in and out.\n" +
		"\n" +
		"2. Goals and Objectives\n" +
		"Goal text.\n"

	doc := Parse(input)

	intro := doc.Sections[0]
	require.Len(t, intro.Subsections, 2)
	assert.Equal(t, "1.1", intro.Subsections[0].Label())
	assert.Equal(t, "Purpose", intro.Subsections[0].Title)
	assert.Equal(t, "Why we build this.", intro.Subsections[0].Body)
	assert.Equal(t, "1.2", intro.Subsections[1].Label())
	assert.Equal(t, "What is in and out.", intro.Subsections[1].Body)

	goals := doc.Sections[1]
	assert.False(t, goals.Placeholder)
	assert.Empty(t, goals.Subsections)
	assert.Equal(t, "Goal text.", goals.Body)
}

func TestParseSubsectionDoesNotCrossBoundary(t *testing.T) {
	// A dotted marker naming a different section is body text, not a
	// subsection of anything.
	input := "2. Goals and Objectives\n3.1 Stray marker\nmore goals\n"

	doc := Parse(input)

	goals := doc.Sections[1]
	assert.Empty(t, goals.Subsections)
	assert.Contains(t, goals.Body, "3.1 Stray marker")
	assert.True(t, doc.Sections[2].Placeholder)
}

func TestParseOutOfOrderMarkers(t *testing.T) {
	input := "2. Goals and Objectives\nsecond body\n1. Introduction\nfirst body\n"

	doc := Parse(input)

	assert.False(t, doc.Sections[0].Placeholder)
	assert.Equal(t, "first body", doc.Sections[0].Body)
	assert.False(t, doc.Sections[1].Placeholder)
	assert.Equal(t, "second body", doc.Sections[1].Body)
}

func TestParseKeepsModelTitleOverDefault(t *testing.T) {
	doc := Parse("1. Intro and Background\nsome text\n")

	assert.Equal(t, "Intro and Background", doc.Sections[0].Title)
	assert.False(t, doc.Sections[0].Placeholder)
}

func TestParsePreambleBelongsToNoSection(t *testing.T) {
	doc := Parse("Product Requirements Document: Acme\n\n1. Introduction\nbody\n")

	assert.Equal(t, "body", doc.Sections[0].Body)
	for _, sec := range doc.Sections[1:] {
		assert.Empty(t, sec.Body)
	}
}
