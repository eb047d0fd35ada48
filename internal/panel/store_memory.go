// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package panel

import (
	"context"
	"sync"
	"time"

	"github.com/taibuivan/redherring/internal/platform/apperr"
)

type memoryItem struct {
	data     []byte
	lastSeen time.Time
}

// MemoryStore keeps sessions in process memory. With a positive TTL a
// session expires after that much inactivity; with zero it never does.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]memoryItem
	ttl   time.Duration
	now   func() time.Time

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewMemoryStore creates a store. When ttl > 0 a reaper goroutine drops
// expired sessions every sweep interval until [MemoryStore.Close].
func NewMemoryStore(ttl, sweep time.Duration) *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]memoryItem),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}

	if ttl > 0 && sweep > 0 {
		go store.reap(sweep)
	} else {
		close(store.done)
	}
	return store
}

func (store *MemoryStore) Save(_ context.Context, session *Session) error {
	data, err := encode(session)
	if err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	store.items[session.ID] = memoryItem{data: data, lastSeen: store.now()}
	return nil
}

func (store *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	store.mu.Lock()
	item, ok := store.items[id]
	if ok && store.expired(item) {
		delete(store.items, id)
		ok = false
	}
	if ok {
		item.lastSeen = store.now()
		store.items[id] = item
	}
	store.mu.Unlock()

	if !ok {
		return nil, apperr.Expired()
	}
	return decode(item.data)
}

func (store *MemoryStore) Take(_ context.Context, id string) (*Session, error) {
	store.mu.Lock()
	item, ok := store.items[id]
	ok = ok && !store.expired(item)
	delete(store.items, id)
	store.mu.Unlock()

	if !ok {
		return nil, apperr.Expired()
	}
	return decode(item.data)
}

func (store *MemoryStore) Delete(_ context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.items, id)
	return nil
}

// Len returns the number of sessions currently held.
func (store *MemoryStore) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.items)
}

// Sweep drops every expired session and returns how many were removed.
func (store *MemoryStore) Sweep() int {
	store.mu.Lock()
	defer store.mu.Unlock()

	removed := 0
	for id, item := range store.items {
		if store.expired(item) {
			delete(store.items, id)
			removed++
		}
	}
	return removed
}

// Close stops the reaper goroutine and waits for it to exit.
func (store *MemoryStore) Close() {
	store.once.Do(func() { close(store.stop) })
	<-store.done
}

func (store *MemoryStore) expired(item memoryItem) bool {
	return store.ttl > 0 && store.now().Sub(item.lastSeen) > store.ttl
}

func (store *MemoryStore) reap(sweep time.Duration) {
	defer close(store.done)

	ticker := time.NewTicker(sweep)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			store.Sweep()
		case <-store.stop:
			return
		}
	}
}
