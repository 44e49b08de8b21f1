package memory

import "sync"

// Buffer keeps the most recent user utterances for one session, oldest first.
// Capacity is fixed at construction; appending past it discards the oldest
// entries. All methods are safe for concurrent use.
type Buffer struct {
	mu       sync.RWMutex
	entries  []string
	capacity int
}

func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1
	}
	return &Buffer{
		entries:  make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Append adds an utterance at the end, trimming from the front when the
// capacity is exceeded.
func (b *Buffer) Append(utterance string) {
	b.mu.Lock()
	b.entries = append(b.entries, utterance)
	if len(b.entries) > b.capacity {
		b.entries = b.entries[len(b.entries)-b.capacity:]
	}
	b.mu.Unlock()
}

// Recent returns the last min(k, Len) utterances in insertion order.
func (b *Buffer) Recent(k int) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if k <= 0 || len(b.entries) == 0 {
		return nil
	}
	if k > len(b.entries) {
		k = len(b.entries)
	}
	out := make([]string, k)
	copy(out, b.entries[len(b.entries)-k:])
	return out
}

// All returns the full current contents, oldest first.
func (b *Buffer) All() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}
