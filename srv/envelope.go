package srv

import (
	"encoding/json"
	"regexp"
)

// envelope is the JSON block the conversation prompt asks the model to
// wrap its replies in. Extraction is best effort: the first brace-delimited
// block is tried, nothing more.
type envelope struct {
	Status          string   `json:"status"`
	NextQuestion    string   `json:"next_question"`
	MissingSections []string `json:"missing_sections"`
	Message         string   `json:"message"`
}

var jsonBlockRe = regexp.MustCompile(`\{[\s\S]*?\}`)

// extractEnvelope pulls the first JSON object out of a model reply. The
// model often wraps the envelope in prose or code fences, so the match is
// positional rather than structural. Returns false when no parseable block
// exists.
func extractEnvelope(reply string) (*envelope, bool) {
	match := jsonBlockRe.FindString(reply)
	if match == "" {
		return nil, false
	}

	var env envelope
	if err := json.Unmarshal([]byte(match), &env); err != nil {
		return nil, false
	}
	return &env, true
}
