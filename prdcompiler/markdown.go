package prdcompiler

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/russross/blackfriday/v2"
	"golang.org/x/net/html"
)

// GenerateMarkdown renders markdown-flavored content ("##" headings, "-"
// or "*" bullets) instead of the numbered-section grammar. The markdown is
// converted to HTML and the DOM is walked straight onto the page; there is
// no section catalog, so the document is cover page plus content.
func (c *Compiler) GenerateMarkdown(content, projectName string) ([]byte, error) {
	if projectName == "" {
		projectName = extractMarkdownProjectName(content)
	}

	pdf, font := c.newPDF()
	pdf.AddPage()

	c.renderStory(pdf, font, []block{
		{kind: blockTitle, text: "Product Requirements Document"},
		{kind: blockSubtitle, text: projectName},
		{kind: blockParagraph, text: "Generated on: " + time.Now().Format("2006-01-02")},
		{kind: blockPageBreak},
	})

	htmlBytes := blackfriday.Run([]byte(content))
	doc, err := html.Parse(bytes.NewReader(htmlBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing rendered markdown: %w", err)
	}
	c.renderHTML(pdf, font, doc)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("assembling pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// extractMarkdownProjectName looks for the document title phrase anywhere
// in the markdown; without one the document is an unnamed project.
func extractMarkdownProjectName(content string) string {
	if m := projectNameRe.FindStringSubmatch(content); m != nil {
		name := strings.Trim(strings.TrimSpace(m[1]), "#* ")
		if name != "" {
			return name
		}
	}
	return "Unnamed Project"
}

func (c *Compiler) renderHTML(pdf *gofpdf.Fpdf, font string, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if text := cleanText(n.Data); strings.TrimSpace(text) != "" {
			pdf.Write(5.5, text)
		}
	case html.ElementNode:
		s := c.style
		switch n.Data {
		case "h1":
			pdf.Ln(8)
			pdf.SetFont(font, "B", 16)
			setColor(pdf, s.HeadingColor)
			c.renderHTMLChildren(pdf, font, n)
			pdf.Ln(8)
		case "h2":
			pdf.Ln(6)
			pdf.SetFont(font, "B", 14)
			setColor(pdf, s.HeadingColor)
			c.renderHTMLChildren(pdf, font, n)
			pdf.Ln(7)
		case "h3", "h4":
			pdf.Ln(4)
			pdf.SetFont(font, "B", 12)
			setColor(pdf, s.SubheadingColor)
			c.renderHTMLChildren(pdf, font, n)
			pdf.Ln(6)
		case "p":
			pdf.SetFont(font, "", 11)
			setColor(pdf, s.TextColor)
			c.renderHTMLChildren(pdf, font, n)
			pdf.Ln(7)
		case "ul", "ol":
			pdf.Ln(2)
			c.renderHTMLChildren(pdf, font, n)
			pdf.Ln(2)
		case "li":
			pdf.SetFont(font, "", 11)
			setColor(pdf, s.TextColor)
			pdf.SetX(s.Margin + 5)
			pdf.Write(5.5, "- ")
			c.renderHTMLChildren(pdf, font, n)
			pdf.Ln(5.5)
		case "strong", "b":
			pdf.SetFont(font, "B", 11)
			c.renderHTMLChildren(pdf, font, n)
			pdf.SetFont(font, "", 11)
		case "em", "i":
			pdf.SetFont(c.style.Fallback, "I", 11)
			c.renderHTMLChildren(pdf, font, n)
			pdf.SetFont(font, "", 11)
		case "code", "pre":
			pdf.SetFont("Courier", "", 10)
			c.renderHTMLChildren(pdf, font, n)
			pdf.SetFont(font, "", 11)
		case "br":
			pdf.Ln(5.5)
		default:
			c.renderHTMLChildren(pdf, font, n)
		}
	default:
		c.renderHTMLChildren(pdf, font, n)
	}
}

func (c *Compiler) renderHTMLChildren(pdf *gofpdf.Fpdf, font string, n *html.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.renderHTML(pdf, font, child)
	}
}
