package prdcompiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProducesPDF(t *testing.T) {
	c := NewCompiler(DefaultStyle())

	pdf, err := c.Generate(fullInput(), "")
	require.NoError(t, err)
	assert.True(t, len(pdf) > 1000, "pdf suspiciously small: %d bytes", len(pdf))
	assert.Equal(t, "%PDF-", string(pdf[:5]))
}

func TestGenerateNeverFailsOnGarbage(t *testing.T) {
	c := NewCompiler(DefaultStyle())

	for _, input := range []string{"", "lorem ipsum no markers", "FR01 | x"} {
		pdf, err := c.Generate(input, "")
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, "%PDF-", string(pdf[:5]))
	}
}

func TestGenerateWithRequirementsTable(t *testing.T) {
	input := "Product Requirements Document: Tabled\n\n" +
		"4. Functional Requirements\n" +
		"ID | Requirement Description | Priority | Dependencies\n" +
		"FR01 | Login | High | None\n" +
		"FR02 | Search | Medium | FR01\n"

	c := NewCompiler(DefaultStyle())
	pdf, err := c.Generate(input, "")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(pdf[:5]))
}

func TestGenerateProjectNameOverride(t *testing.T) {
	c := NewCompiler(DefaultStyle())

	pdf, err := c.Generate("1. Introduction\nhello\n", "Override Name")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(pdf[:5]))
}

func TestNewCompilerFillsDefaults(t *testing.T) {
	c := NewCompiler(Style{})

	assert.Equal(t, "A4", c.style.PageSize)
	assert.Equal(t, "Helvetica", c.style.Fallback)
	assert.Len(t, c.style.SectionTitles, 16)
	assert.Equal(t, RGB{44, 62, 80}, c.style.HeadingColor)
}

func TestGenerateMissingFontFileFallsBack(t *testing.T) {
	style := DefaultStyle()
	style.FontFamily = "Montserrat"
	style.FontFile = "testdata/does-not-exist.ttf"
	style.FontBoldFile = "testdata/does-not-exist-bold.ttf"

	c := NewCompiler(style)
	pdf, err := c.Generate("1. Introduction\nhello\n", "")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(pdf[:5]))
}
