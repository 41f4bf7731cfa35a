package prdcompiler

import "strings"

// RequirementRow is one functional requirement from the pipe-delimited
// table in section 4. Priority is High/Medium/Low by convention only; the
// parser does not enforce it.
type RequirementRow struct {
	ID           string
	Description  string
	Priority     string
	Dependencies string
}

var requirementHeader = [4]string{"ID", "Requirement Description", "Priority", "Dependencies"}

// looksLikeTable reports whether a body text contains a recognizable
// requirements table: an FR-prefixed pipe row or the pipe header line.
func looksLikeTable(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "|") {
			continue
		}
		if strings.HasPrefix(line, "FR") || strings.HasPrefix(line, "ID") {
			return true
		}
	}
	return false
}

// parseRequirementRows extracts data rows from a table body. Each line is
// parsed independently: the header line is skipped, lines with fewer than
// four pipe-delimited fields are dropped, extra fields are truncated. If
// nothing survives, one synthetic placeholder row is returned so the
// rendered table is never empty.
func parseRequirementRows(text string) []RequirementRow {
	var rows []RequirementRow

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "|") || !strings.HasPrefix(line, "FR") {
			continue
		}

		cells := splitTableRow(line)
		if len(cells) < 4 {
			continue
		}
		rows = append(rows, RequirementRow{
			ID:           cells[0],
			Description:  cells[1],
			Priority:     cells[2],
			Dependencies: cells[3],
		})
	}

	if len(rows) == 0 {
		rows = append(rows, RequirementRow{
			ID:           "FR01",
			Description:  "Placeholder requirement",
			Priority:     "High",
			Dependencies: "-",
		})
	}
	return rows
}
