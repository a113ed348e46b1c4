package cart

import (
	"sync"
	"time"
)

// セッションIDごとのカート置き場。アクセスの無いカートは期限切れで捨てる。
type SessionStore struct {
	mu       sync.Mutex
	carts    map[string]*Cart
	lastSeen map[string]time.Time
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		carts:    make(map[string]*Cart),
		lastSeen: make(map[string]time.Time),
		ttl:      ttl,
	}
}

// Get はセッションのカートを返す。無ければ空のカートを作る。
func (s *SessionStore) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.sweep(now)

	c, ok := s.carts[sessionID]
	if !ok {
		c = New()
		s.carts[sessionID] = c
	}
	s.lastSeen[sessionID] = now
	return c
}

// Drop はセッションのカートを破棄する（チェックアウト完了後など）。
func (s *SessionStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	delete(s.lastSeen, sessionID)
}

// 期限切れセッションの掃除。Getのついでに呼ぶ。
func (s *SessionStore) sweep(now time.Time) {
	for id, seen := range s.lastSeen {
		if now.Sub(seen) > s.ttl {
			delete(s.carts, id)
			delete(s.lastSeen, id)
		}
	}
}
