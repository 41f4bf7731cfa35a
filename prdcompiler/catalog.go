package prdcompiler

// DefaultSectionTitles is the fixed, ordered catalog of top-level PRD
// sections. Section numbers are 1-based positions in this list. The parser
// always produces an entry for every title here, falling back to a
// placeholder when the input never mentions the section.
var DefaultSectionTitles = []string{
	"Introduction",
	"Goals and Objectives",
	"User Personas and Roles",
	"Functional Requirements",
	"Non-Functional Requirements",
	"User Interface (UI) / User Experience (UX) Considerations",
	"Data Requirements",
	"System Architecture & Technical Considerations",
	"Release Criteria & Success Metrics",
	"Timeline & Milestones",
	"Team Structure",
	"User Stories",
	"Cost Estimation",
	"Open Issues & Future Considerations",
	"Appendix",
	"Points Requiring Further Clarification",
}
