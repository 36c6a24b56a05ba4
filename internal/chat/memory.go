package chat

import (
	"sync"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/llm"
)

// Memory is the process-lifetime conversation store. Histories are
// capped at limit messages with FIFO eviction; the system prompt is
// regenerated per request and never stored here. Conversations live
// until explicitly deleted.
type Memory struct {
	mu            sync.Mutex
	limit         int
	conversations map[string][]llm.Message
	locks         map[string]*sync.Mutex
}

// NewMemory creates a conversation store capped at limit messages per
// conversation.
func NewMemory(limit int) *Memory {
	return &Memory{
		limit:         limit,
		conversations: make(map[string][]llm.Message),
		locks:         make(map[string]*sync.Mutex),
	}
}

// Lock serializes turns on one conversation id and returns the unlock
// function. A lock held by an in-flight turn survives deletion of its
// conversation; idle lock entries are dropped by Delete so the lock
// table does not grow with every conversation id ever seen.
func (m *Memory) Lock(id string) func() {
	m.mu.Lock()
	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// History returns a copy of the stored messages for a conversation,
// oldest first. Unknown ids yield an empty slice.
func (m *Memory) History(id string) []llm.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := m.conversations[id]
	out := make([]llm.Message, len(msgs))
	copy(out, msgs)
	return out
}

// Append stores messages for a conversation, evicting the oldest
// beyond the cap.
func (m *Memory) Append(id string, msgs ...llm.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	history := append(m.conversations[id], msgs...)
	if len(history) > m.limit {
		history = history[len(history)-m.limit:]
	}
	m.conversations[id] = history
}

// Delete removes a conversation and reports whether it existed. The
// per-id turn lock is released from the table only when no turn holds
// it.
func (m *Memory) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.locks[id]; ok && l.TryLock() {
		delete(m.locks, id)
		l.Unlock()
	}
	if _, ok := m.conversations[id]; !ok {
		return false
	}
	delete(m.conversations, id)
	return true
}
