package srv

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opd-ai/prdbot/prdcompiler"
	"github.com/opd-ai/prdbot/srv/util"
)

// RequirementsRequest is the client turn payload. An empty SessionID
// starts a new conversation; the minted id comes back in every response.
type RequirementsRequest struct {
	SessionID    string `json:"session_id"`
	Requirements string `json:"requirements"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Product Requirements Document (PRD) Generator API",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// handleRequirements runs one conversational turn. The model's JSON
// envelope decides the outcome: awaiting_more_info relays the next
// question, ready triggers the PRD generation call and streams the PDF,
// anything else falls back to the raw reply.
func (s *Server) handleRequirements(w http.ResponseWriter, r *http.Request) {
	var req RequirementsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Requirements) == "" {
		http.Error(w, "Field 'requirements' is required", http.StatusBadRequest)
		return
	}

	sessionID := req.SessionID
	if _, err := uuid.Parse(sessionID); err != nil {
		sessionID = uuid.New().String()
	}

	history := s.store.Get(sessionID)
	history = append(history, Message{Role: "user", Content: req.Requirements})

	reply, err := s.llm.Complete(r.Context(), conversationPrompt(), history)
	if err != nil {
		util.Logger.Error("model call failed", "session", sessionID, "error", err)
		http.Error(w, "Language model unavailable", http.StatusBadGateway)
		return
	}
	reply = strings.TrimSpace(reply)

	history = append(history, Message{Role: "assistant", Content: reply})
	s.store.Put(sessionID, history)

	env, ok := extractEnvelope(reply)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]string{
			"raw_reply":  reply,
			"session_id": sessionID,
		})
		return
	}

	switch env.Status {
	case "awaiting_more_info":
		writeJSON(w, http.StatusOK, map[string]any{
			"status":           env.Status,
			"next_question":    fallbackQuestion(env.NextQuestion),
			"missing_sections": env.MissingSections,
			"session_id":       sessionID,
		})

	case "ready":
		s.generateDocument(w, r, sessionID, history)

	default:
		writeJSON(w, http.StatusOK, map[string]string{
			"raw_reply":  reply,
			"session_id": sessionID,
		})
	}
}

// generateDocument asks the model for the full PRD text, compiles it, and
// streams it as a download. The session is finished either way: a
// completed conversation has no further turns.
func (s *Server) generateDocument(w http.ResponseWriter, r *http.Request, sessionID string, history []Message) {
	history = append(history, Message{Role: "user", Content: prdPrompt()})

	content, err := s.llm.Complete(r.Context(), conversationPrompt(), history)
	if err != nil {
		util.Logger.Error("prd generation failed", "session", sessionID, "error", err)
		http.Error(w, "Language model unavailable", http.StatusBadGateway)
		return
	}
	content = strings.TrimSpace(content)

	var pdf []byte
	if isMarkdownDocument(content) {
		pdf, err = s.compiler.GenerateMarkdown(content, "")
	} else {
		pdf, err = s.compiler.Generate(content, "")
	}
	if err != nil {
		util.Logger.Error("pdf assembly failed", "session", sessionID, "error", err)
		http.Error(w, "Failed to generate document", http.StatusInternalServerError)
		return
	}

	s.store.Delete(sessionID)

	name := prdcompiler.ExtractProjectName(content)
	filename := prdcompiler.Filename(name, time.Now())

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("X-Session-Id", sessionID)
	if _, err := w.Write(pdf); err != nil {
		util.Logger.Error("writing pdf response", "session", sessionID, "error", err)
	}
}

var (
	markdownHeadingRe = regexp.MustCompile(`(?m)^#{1,3}\s`)
	numberedHeadingRe = regexp.MustCompile(`(?m)^\d{1,2}\.\s`)
)

// isMarkdownDocument picks the renderer mode: markdown headings with no
// numbered section markers means the model ignored the numbered template.
func isMarkdownDocument(content string) bool {
	return markdownHeadingRe.MatchString(content) && !numberedHeadingRe.MatchString(content)
}

func fallbackQuestion(q string) string {
	if strings.TrimSpace(q) == "" {
		return "Could you tell me more about your project?"
	}
	return q
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		util.Logger.Error("encoding response", "error", err)
	}
}
