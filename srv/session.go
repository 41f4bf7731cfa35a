package srv

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// ConversationStore keeps per-session message history. Entries expire 24
// hours after their last write and are swept hourly, so abandoned sessions
// cannot grow the map without bound. Concurrent requests on distinct
// sessions are safe; two simultaneous requests on the same session race on
// its history, which is accepted.
type ConversationStore struct {
	cache *cache.Cache
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		cache: cache.New(24*time.Hour, 1*time.Hour),
	}
}

// Get returns the accumulated history for a session, or nil for a new one.
func (s *ConversationStore) Get(sessionID string) []Message {
	if data, ok := s.cache.Get(sessionID); ok {
		if history, ok := data.([]Message); ok {
			return history
		}
	}
	return nil
}

// Put replaces the session's history and refreshes its expiry.
func (s *ConversationStore) Put(sessionID string, history []Message) {
	s.cache.Set(sessionID, history, cache.DefaultExpiration)
}

// Delete drops a finished session.
func (s *ConversationStore) Delete(sessionID string) {
	s.cache.Delete(sessionID)
}
