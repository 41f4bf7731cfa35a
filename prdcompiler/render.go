package prdcompiler

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RGB is a palette entry.
type RGB struct {
	R, G, B int
}

// Style collects every knob the renderer exposes: one configuration
// structure instead of parallel renderer variants.
type Style struct {
	PageSize string // "A4" or "Letter"
	Margin   float64

	// FontFamily with FontFile/FontBoldFile selects a custom TTF face.
	// When either file is missing the renderer falls back to Fallback.
	FontFamily   string
	FontFile     string
	FontBoldFile string
	Fallback     string

	HeadingColor    RGB
	SubheadingColor RGB
	TextColor       RGB

	SectionTitles []string
	PageNumbers   bool

	// A non-empty CompanyName appends the closing company page.
	CompanyName  string
	ContactEmail string
}

// DefaultStyle returns the standard PRD look: A4, Helvetica, the blue/slate
// palette, page numbers on, no company page.
func DefaultStyle() Style {
	return Style{
		PageSize:        "A4",
		Margin:          20,
		Fallback:        "Helvetica",
		HeadingColor:    RGB{44, 62, 80},
		SubheadingColor: RGB{52, 152, 219},
		TextColor:       RGB{52, 73, 94},
		SectionTitles:   DefaultSectionTitles,
		PageNumbers:     true,
	}
}

// Compiler renders PRD text into a paginated PDF. It holds no per-document
// state: one Compiler is safe to reuse across Generate calls.
type Compiler struct {
	style Style
}

// NewCompiler creates a Compiler with the given style. Zero-valued style
// fields inherit the defaults.
func NewCompiler(style Style) *Compiler {
	def := DefaultStyle()
	if style.PageSize == "" {
		style.PageSize = def.PageSize
	}
	if style.Margin == 0 {
		style.Margin = def.Margin
	}
	if style.Fallback == "" {
		style.Fallback = def.Fallback
	}
	if style.HeadingColor == (RGB{}) {
		style.HeadingColor = def.HeadingColor
	}
	if style.SubheadingColor == (RGB{}) {
		style.SubheadingColor = def.SubheadingColor
	}
	if style.TextColor == (RGB{}) {
		style.TextColor = def.TextColor
	}
	if len(style.SectionTitles) == 0 {
		style.SectionTitles = def.SectionTitles
	}
	return &Compiler{style: style}
}

// Generate parses content into the 16-section document and renders it.
// projectName overrides the name extracted from the content when non-empty.
// The only error path is document assembly itself; parse misses degrade to
// placeholders. On error no partial output is returned.
func (c *Compiler) Generate(content, projectName string) ([]byte, error) {
	if projectName == "" {
		projectName = ExtractProjectName(content)
	}

	doc := Parse(content)
	story := c.buildStory(doc, projectName, time.Now())

	pdf, font := c.newPDF()
	pdf.AddPage()
	c.renderStory(pdf, font, story)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("assembling pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Compiler) newPDF() (*gofpdf.Fpdf, string) {
	pdf := gofpdf.New("P", "mm", c.style.PageSize, "")
	pdf.SetMargins(c.style.Margin, c.style.Margin, c.style.Margin)
	pdf.SetTitle("Product Requirements Document", true)

	font := c.style.Fallback
	if c.style.FontFamily != "" && fileExists(c.style.FontFile) && fileExists(c.style.FontBoldFile) {
		pdf.AddUTF8Font(c.style.FontFamily, "", c.style.FontFile)
		pdf.AddUTF8Font(c.style.FontFamily, "B", c.style.FontBoldFile)
		font = c.style.FontFamily
	}

	if c.style.PageNumbers {
		fallback := c.style.Fallback
		pdf.SetFooterFunc(func() {
			pdf.SetY(-15)
			pdf.SetFont(fallback, "I", 8)
			pdf.SetTextColor(128, 128, 128)
			pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()),
				"", 0, "C", false, 0, "")
		})
	}
	return pdf, font
}

func (c *Compiler) renderStory(pdf *gofpdf.Fpdf, font string, story []block) {
	s := c.style
	for _, b := range story {
		switch b.kind {
		case blockTitle:
			pdf.SetFont(font, "B", 20)
			setColor(pdf, s.HeadingColor)
			pdf.MultiCell(0, 10, cleanText(b.text), "", "C", false)
			pdf.Ln(4)
		case blockSubtitle:
			pdf.SetFont(font, "B", 16)
			setColor(pdf, s.SubheadingColor)
			pdf.MultiCell(0, 8, cleanText(b.text), "", "C", false)
			pdf.Ln(4)
		case blockHeading:
			pdf.Ln(6)
			pdf.SetFont(font, "B", 14)
			setColor(pdf, s.HeadingColor)
			pdf.MultiCell(0, 7, cleanText(b.text), "", "L", false)
			pdf.Ln(1)
		case blockSubheading:
			pdf.Ln(3)
			pdf.SetFont(font, "B", 12)
			setColor(pdf, s.SubheadingColor)
			pdf.MultiCell(0, 6, cleanText(b.text), "", "L", false)
		case blockParagraph:
			pdf.SetFont(font, "", 11)
			setColor(pdf, s.TextColor)
			pdf.MultiCell(0, 5.5, cleanText(b.text), "", "L", false)
			pdf.Ln(2)
		case blockBullets:
			pdf.SetFont(font, "", 11)
			setColor(pdf, s.TextColor)
			for _, item := range b.items {
				pdf.SetX(s.Margin + 5)
				pdf.MultiCell(0, 5.5, "- "+cleanText(item), "", "L", false)
			}
			pdf.Ln(2)
		case blockTable:
			c.renderTable(pdf, font, b.rows)
		case blockTOCEntry:
			pdf.SetFont(font, "", 12)
			setColor(pdf, s.HeadingColor)
			pdf.MultiCell(0, 7, cleanText(b.text), "", "L", false)
		case blockFooterName:
			pdf.SetFont(font, "B", 16)
			setColor(pdf, s.HeadingColor)
			pdf.MultiCell(0, 8, cleanText(b.text), "", "C", false)
		case blockFooterContact:
			pdf.SetFont(font, "", 11)
			setColor(pdf, s.TextColor)
			pdf.MultiCell(0, 6, cleanText(b.text), "", "C", false)
		case blockPageBreak:
			pdf.AddPage()
		case blockSpacer:
			pdf.Ln(8)
		}
	}
}

// renderTable draws the fixed 4-column requirements table: a shaded header
// row, then one bordered row per requirement with the row height matched to
// its tallest cell.
func (c *Compiler) renderTable(pdf *gofpdf.Fpdf, font string, rows []RequirementRow) {
	s := c.style
	availWidth := pageWidth(s.PageSize) - 2*s.Margin
	widths := [4]float64{
		availWidth * 0.12,
		availWidth * 0.48,
		availWidth * 0.15,
		availWidth * 0.25,
	}
	lineHt := 6.0

	pdf.SetFont(font, "B", 10)
	pdf.SetFillColor(240, 240, 240)
	setColor(pdf, s.HeadingColor)
	for i, header := range requirementHeader {
		pdf.CellFormat(widths[i], lineHt, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(lineHt)

	pdf.SetFont(font, "", 10)
	setColor(pdf, s.TextColor)
	for _, row := range rows {
		cells := [4]string{
			cleanText(row.ID),
			cleanText(row.Description),
			cleanText(row.Priority),
			cleanText(row.Dependencies),
		}

		maxHt := lineHt
		for i, cell := range cells {
			lines := splitByWidth(pdf, cell, widths[i]-2)
			if ht := float64(len(lines)) * lineHt; ht > maxHt {
				maxHt = ht
			}
		}

		x := pdf.GetX()
		y := pdf.GetY()
		for i, cell := range cells {
			pdf.Rect(x, y, widths[i], maxHt, "D")
			pdf.SetXY(x, y)
			pdf.MultiCell(widths[i], lineHt, cell, "", "L", false)
			x += widths[i]
		}
		pdf.SetXY(s.Margin, y+maxHt)
	}
	pdf.Ln(3)
}

// splitByWidth word-wraps text against a column width using the current
// font metrics, so a row can be sized before its cells are drawn.
func splitByWidth(pdf *gofpdf.Fpdf, text string, width float64) []string {
	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		testLine := currentLine
		if testLine != "" {
			testLine += " "
		}
		testLine += word

		if pdf.GetStringWidth(testLine) > width && currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func setColor(pdf *gofpdf.Fpdf, c RGB) {
	pdf.SetTextColor(c.R, c.G, c.B)
}

func pageWidth(pageSize string) float64 {
	if pageSize == "Letter" {
		return 215.9
	}
	return 210 // A4
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
