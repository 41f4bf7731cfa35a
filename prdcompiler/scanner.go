package prdcompiler

import (
	"regexp"
	"strconv"
	"strings"
)

// The scanner walks text once, line by line, and classifies every line
// against a single grammar: section marker "N. Title", subsection marker
// "N.M Title", bullet "- text" / "* text", pipe-delimited table row, blank,
// or plain text. Parsing and content dispatch both consume this stream, so
// there is exactly one notion of what a marker looks like.

type lineKind int

const (
	lineText lineKind = iota
	lineBlank
	lineSection
	lineSubsection
	lineBullet
	lineTableRow
)

type scannedLine struct {
	kind  lineKind
	text  string // trimmed line content; for bullets, text after the marker
	num   int    // section number for lineSection / lineSubsection
	sub   int    // subsection number for lineSubsection
	title string // heading text for lineSection / lineSubsection
	cells []string
}

var (
	sectionRe    = regexp.MustCompile(`^(\d{1,2})\.\s+(\S.*)$`)
	subsectionRe = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.?\s+(\S.*)$`)
	bulletRe     = regexp.MustCompile(`^[-*]\s+(.*)$`)
)

func scanLines(content string) []scannedLine {
	rawLines := strings.Split(content, "\n")
	lines := make([]scannedLine, 0, len(rawLines))

	for _, raw := range rawLines {
		line := strings.TrimSpace(raw)
		lines = append(lines, classifyLine(line))
	}
	return lines
}

func classifyLine(line string) scannedLine {
	if line == "" {
		return scannedLine{kind: lineBlank}
	}

	// Some models bold their headings: "**1. Introduction**".
	if strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) > 4 {
		line = strings.TrimSpace(strings.Trim(line, "*"))
		if line == "" {
			return scannedLine{kind: lineBlank}
		}
	}

	// Subsection markers must win over section markers: "1.2 Scope" also
	// matches the section pattern with title "2 Scope".
	if m := subsectionRe.FindStringSubmatch(line); m != nil {
		num, _ := strconv.Atoi(m[1])
		sub, _ := strconv.Atoi(m[2])
		return scannedLine{
			kind:  lineSubsection,
			text:  line,
			num:   num,
			sub:   sub,
			title: strings.TrimSpace(m[3]),
		}
	}

	if m := sectionRe.FindStringSubmatch(line); m != nil {
		num, _ := strconv.Atoi(m[1])
		if num >= 1 && num <= len(DefaultSectionTitles) {
			return scannedLine{
				kind:  lineSection,
				text:  line,
				num:   num,
				title: strings.TrimSpace(m[2]),
			}
		}
		// Numbered lines outside the catalog range stay plain text.
		return scannedLine{kind: lineText, text: line}
	}

	if m := bulletRe.FindStringSubmatch(line); m != nil {
		return scannedLine{kind: lineBullet, text: strings.TrimSpace(m[1])}
	}

	if strings.Contains(line, "|") {
		cells := splitTableRow(line)
		if len(cells) >= 2 {
			return scannedLine{kind: lineTableRow, text: line, cells: cells}
		}
	}

	return scannedLine{kind: lineText, text: line}
}

func splitTableRow(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}
