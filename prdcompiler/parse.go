package prdcompiler

import (
	"fmt"
	"strings"
)

// Document is the parsed form of a PRD text. Sections always holds one
// entry per catalog title, in catalog order, regardless of input shape.
type Document struct {
	Sections []Section
}

// Section is one top-level PRD section. Placeholder is true when the input
// never contained the section's marker; a placeholder carries the catalog's
// default title and an empty body.
type Section struct {
	Number      int
	Title       string
	Body        string
	Subsections []Subsection
	Placeholder bool
}

// Subsection is a dotted entry ("4.2 Scope") inside one section. Unlike
// sections, subsections are never synthesized: zero found means zero.
type Subsection struct {
	Section int
	Number  int
	Title   string
	Body    string
}

// Label returns the dotted identifier, e.g. "4.2".
func (s Subsection) Label() string {
	return fmt.Sprintf("%d.%d", s.Section, s.Number)
}

// Parse splits a PRD text into the full 16-section document. There is no
// error path: any input, including the empty string, degrades to
// placeholders rather than failing. Marker lines are consumed by the
// scanner, so section and subsection bodies never repeat their headings.
func Parse(content string) *Document {
	titles := make(map[int]string)
	bodies := make(map[int][]string)
	subs := make(map[int][]*Subsection)

	curSection := 0
	var curSub *Subsection

	appendBody := func(text string) {
		if curSection == 0 {
			// Preamble before the first marker (the document title line)
			// belongs to no section.
			return
		}
		if curSub != nil {
			if curSub.Body != "" || text != "" {
				curSub.Body += text + "\n"
			}
			return
		}
		bodies[curSection] = append(bodies[curSection], text)
	}

	for _, line := range scanLines(content) {
		switch line.kind {
		case lineSection:
			curSection = line.num
			curSub = nil
			if _, seen := titles[line.num]; !seen {
				titles[line.num] = line.title
			}
		case lineSubsection:
			// A dotted marker only opens a subsection of the section it
			// names; a stray "7.2" inside section 3 is body text.
			if line.num == curSection {
				curSub = &Subsection{
					Section: line.num,
					Number:  line.sub,
					Title:   line.title,
				}
				subs[curSection] = append(subs[curSection], curSub)
			} else {
				appendBody(line.text)
			}
		case lineBlank:
			appendBody("")
		default:
			appendBody(line.text)
		}
	}

	doc := &Document{Sections: make([]Section, 0, len(DefaultSectionTitles))}
	for i, defaultTitle := range DefaultSectionTitles {
		num := i + 1
		title, found := titles[num]
		if !found || title == "" {
			title = defaultTitle
		}

		sec := Section{
			Number:      num,
			Title:       title,
			Body:        trimBody(strings.Join(bodies[num], "\n")),
			Placeholder: !found,
		}
		for _, sub := range subs[num] {
			sub.Body = trimBody(sub.Body)
			sec.Subsections = append(sec.Subsections, *sub)
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc
}

func trimBody(body string) string {
	return strings.Trim(body, "\n")
}
