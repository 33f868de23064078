package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionState holds per-user UI session state: which chatbot the user is
// currently chatting with. It lives in process memory, expires after the
// configured TTL, and is discarded on logout.
type SessionState struct {
	cache *cache.Cache
}

// NewSessionState creates the session store
func NewSessionState(ttl time.Duration) *SessionState {
	return &SessionState{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

// SetActiveChatbot records the chatbot the user is chatting with
func (s *SessionState) SetActiveChatbot(userID, chatbotID uuid.UUID) {
	s.cache.SetDefault(userID.String(), chatbotID)
}

// ActiveChatbot returns the user's active chatbot, if any
func (s *SessionState) ActiveChatbot(userID uuid.UUID) (uuid.UUID, bool) {
	v, ok := s.cache.Get(userID.String())
	if !ok {
		return uuid.Nil, false
	}
	return v.(uuid.UUID), true
}

// Clear drops the user's session state (logout)
func (s *SessionState) Clear(userID uuid.UUID) {
	s.cache.Delete(userID.String())
}

// DetachChatbot drops every active-chatbot reference to the given chatbot.
// Called when a chatbot is deleted so no session keeps pointing at a
// nonexistent entity.
func (s *SessionState) DetachChatbot(chatbotID uuid.UUID) {
	for key, item := range s.cache.Items() {
		if id, ok := item.Object.(uuid.UUID); ok && id == chatbotID {
			s.cache.Delete(key)
		}
	}
}
