package chat

import (
	"fmt"
	"testing"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/llm"
)

func TestMemoryAppendAndHistory(t *testing.T) {
	m := NewMemory(50)

	m.Append("c1",
		llm.Message{Role: llm.RoleUser, Content: "Hallo"},
		llm.Message{Role: llm.RoleAssistant, Content: "Gut Pfad!"},
	)

	history := m.History("c1")
	if len(history) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(history))
	}
	if history[0].Content != "Hallo" || history[1].Content != "Gut Pfad!" {
		t.Errorf("unexpected history order: %+v", history)
	}
}

func TestMemoryUnknownConversation(t *testing.T) {
	m := NewMemory(50)
	if got := m.History("missing"); len(got) != 0 {
		t.Errorf("expected empty history, got %d messages", len(got))
	}
}

func TestMemoryFIFOEviction(t *testing.T) {
	m := NewMemory(4)

	for i := 0; i < 4; i++ {
		m.Append("c1",
			llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf("frage %d", i)},
			llm.Message{Role: llm.RoleAssistant, Content: fmt.Sprintf("antwort %d", i)},
		)
	}

	history := m.History("c1")
	if len(history) != 4 {
		t.Fatalf("expected history capped at 4, got %d", len(history))
	}
	// The two oldest turns were evicted.
	if history[0].Content != "frage 2" {
		t.Errorf("oldest surviving message: got %q, want %q", history[0].Content, "frage 2")
	}
	if history[3].Content != "antwort 3" {
		t.Errorf("newest message: got %q, want %q", history[3].Content, "antwort 3")
	}
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory(50)
	m.Append("c1", llm.Message{Role: llm.RoleUser, Content: "Hallo"})

	if !m.Delete("c1") {
		t.Error("expected true when deleting an existing conversation")
	}
	if m.Delete("c1") {
		t.Error("expected false when deleting twice")
	}
	if len(m.History("c1")) != 0 {
		t.Error("history should be gone after delete")
	}
}

func TestMemoryDeleteDropsIdleLock(t *testing.T) {
	m := NewMemory(50)
	m.Append("c1", llm.Message{Role: llm.RoleUser, Content: "Hallo"})
	unlock := m.Lock("c1")
	unlock()

	m.Delete("c1")

	m.mu.Lock()
	_, ok := m.locks["c1"]
	m.mu.Unlock()
	if ok {
		t.Error("idle lock entry must be dropped on delete")
	}
}

func TestMemoryDeleteKeepsHeldLock(t *testing.T) {
	m := NewMemory(50)
	m.Append("c1", llm.Message{Role: llm.RoleUser, Content: "Hallo"})
	unlock := m.Lock("c1")
	defer unlock()

	if !m.Delete("c1") {
		t.Fatal("expected delete of existing conversation to succeed")
	}

	m.mu.Lock()
	_, ok := m.locks["c1"]
	m.mu.Unlock()
	if !ok {
		t.Error("a lock held by an in-flight turn must survive delete")
	}
}

func TestMemoryHistoryReturnsCopy(t *testing.T) {
	m := NewMemory(50)
	m.Append("c1", llm.Message{Role: llm.RoleUser, Content: "original"})

	history := m.History("c1")
	history[0].Content = "mutiert"

	if m.History("c1")[0].Content != "original" {
		t.Error("History must return a copy")
	}
}

func TestMemoryLockSerializes(t *testing.T) {
	m := NewMemory(50)

	unlock := m.Lock("c1")
	done := make(chan struct{})
	go func() {
		u := m.Lock("c1")
		u()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("second Lock acquired while first still held")
	default:
	}

	unlock()
	<-done
}
