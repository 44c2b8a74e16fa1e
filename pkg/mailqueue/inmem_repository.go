package mailqueue

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryQueueRepository implements QueueRepository in memory for
// development and testing.
type InMemoryQueueRepository struct {
	mu            sync.RWMutex
	notifications map[uuid.UUID]QueuedNotification
}

func NewInMemoryQueueRepository() *InMemoryQueueRepository {
	return &InMemoryQueueRepository{
		notifications: map[uuid.UUID]QueuedNotification{},
	}
}

func (r *InMemoryQueueRepository) Enqueue(ctx context.Context, params EnqueueParams) (QueuedNotification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := QueuedNotification{
		ID:        uuid.New(),
		ToEmails:  params.ToEmails,
		CCEmails:  params.CCEmails,
		BCCEmails: params.BCCEmails,
		Subject:   params.Subject,
		Body:      params.Body,
		CreatedAt: time.Now().UTC(),
	}
	r.notifications[n.ID] = n
	return n, nil
}

func (r *InMemoryQueueRepository) GetPending(ctx context.Context, limit int32) ([]QueuedNotification, error) {
	if limit <= 0 {
		limit = 100
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	pending := []QueuedNotification{}
	for _, n := range r.notifications {
		if !n.IsSent {
			pending = append(pending, n)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	if int32(len(pending)) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

func (r *InMemoryQueueRepository) MarkAsSent(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		return ErrNotificationNotFound
	}
	now := time.Now().UTC()
	n.IsSent = true
	n.SentAt = &now
	r.notifications[id] = n
	return nil
}
