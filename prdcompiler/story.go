package prdcompiler

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// A block is one renderable unit of the document. The story is the full
// ordered block sequence: cover, table of contents, page break, then one
// run of blocks per section, and an optional closing company page.
type blockKind int

const (
	blockTitle blockKind = iota
	blockSubtitle
	blockHeading
	blockSubheading
	blockParagraph
	blockBullets
	blockTable
	blockTOCEntry
	blockFooterName
	blockFooterContact
	blockPageBreak
	blockSpacer
)

type block struct {
	kind  blockKind
	text  string
	items []string
	rows  []RequirementRow
}

var projectNameRe = regexp.MustCompile(`Product Requirements Document:?\s*([^\n]+)`)

// ExtractProjectName pulls the project name from the document's title
// phrase. Absence is not an error: the fixed default title is returned.
func ExtractProjectName(content string) string {
	if m := projectNameRe.FindStringSubmatch(content); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			return name
		}
	}
	return "Project Requirements Document"
}

// Filename builds the download filename for a generated document:
// "<slug>_prd_<YYYYMMDD>.pdf". The slug lowercases the project name and
// replaces spaces with underscores; other characters pass through.
func Filename(projectName string, now time.Time) string {
	slug := strings.ToLower(strings.TrimSpace(projectName))
	slug = strings.ReplaceAll(slug, " ", "_")
	return fmt.Sprintf("%s_prd_%s.pdf", slug, now.Format("20060102"))
}

func (c *Compiler) buildStory(doc *Document, projectName string, now time.Time) []block {
	story := []block{
		{kind: blockTitle, text: "Product Requirements Document:"},
		{kind: blockSubtitle, text: projectName},
		{kind: blockParagraph, text: "Generated on: " + now.Format("January 2, 2006")},
		{kind: blockSpacer},
	}

	// The ToC lists the catalog titles whether or not the section was found
	// in the input.
	story = append(story, block{kind: blockSubtitle, text: "Table of Contents"})
	for i, title := range c.style.SectionTitles {
		story = append(story, block{kind: blockTOCEntry, text: fmt.Sprintf("%d. %s", i+1, title)})
	}
	story = append(story, block{kind: blockPageBreak})

	for _, sec := range doc.Sections {
		story = append(story, block{kind: blockHeading, text: fmt.Sprintf("%d. %s", sec.Number, sec.Title)})
		if len(sec.Subsections) == 0 {
			story = append(story, dispatchContent(sec.Body)...)
		} else {
			for _, sub := range sec.Subsections {
				story = append(story, block{kind: blockSubheading, text: fmt.Sprintf("%s %s", sub.Label(), sub.Title)})
				story = append(story, dispatchContent(sub.Body)...)
			}
		}
		story = append(story, block{kind: blockSpacer})
	}

	if c.style.CompanyName != "" {
		story = append(story,
			block{kind: blockPageBreak},
			block{kind: blockSpacer},
			block{kind: blockFooterName, text: c.style.CompanyName},
		)
		if c.style.ContactEmail != "" {
			story = append(story, block{
				kind: blockFooterContact,
				text: "For Further Inquiry Please Contact: " + c.style.ContactEmail,
			})
		}
	}
	return story
}

// dispatchContent turns one body text into blocks. Dispatch order: a
// requirements table wins, then bullet accumulation, then plain paragraphs
// split on blank lines. Empty bodies produce nothing, so placeholder
// sections render as a bare heading.
func dispatchContent(body string) []block {
	if strings.TrimSpace(body) == "" {
		return nil
	}

	if looksLikeTable(body) {
		return []block{{kind: blockTable, rows: parseRequirementRows(body)}}
	}

	lines := scanLines(body)
	if hasBullets(lines) {
		return bulletBlocks(lines)
	}
	return paragraphBlocks(body)
}

func hasBullets(lines []scannedLine) bool {
	for _, l := range lines {
		if l.kind == lineBullet {
			return true
		}
	}
	return false
}

// bulletBlocks accumulates contiguous bulleted lines into list blocks. An
// item spans continuation lines until the next bullet or a blank line,
// joined with single spaces. Non-bulleted lines outside any item are
// emitted as paragraphs in place.
func bulletBlocks(lines []scannedLine) []block {
	var blocks []block
	var items []string
	var current []string

	flushItem := func() {
		if current != nil {
			items = append(items, strings.Join(current, " "))
			current = nil
		}
	}
	flushList := func() {
		flushItem()
		if len(items) > 0 {
			blocks = append(blocks, block{kind: blockBullets, items: items})
			items = nil
		}
	}

	for _, l := range lines {
		switch l.kind {
		case lineBullet:
			flushItem()
			current = []string{l.text}
		case lineBlank:
			flushItem()
		default:
			if current != nil {
				current = append(current, l.text)
			} else {
				flushList()
				blocks = append(blocks, block{kind: blockParagraph, text: l.text})
			}
		}
	}
	flushList()
	return blocks
}

func paragraphBlocks(body string) []block {
	var blocks []block
	for _, para := range strings.Split(body, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		blocks = append(blocks, block{
			kind: blockParagraph,
			text: strings.Join(strings.Fields(para), " "),
		})
	}
	return blocks
}
