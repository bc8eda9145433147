package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type session struct {
	workflow *Workflow
	lastSeen time.Time
}

// Registry menyimpan workflow per sesi browser, dengan key UUID acak.
type Registry struct {
	newWorkflow func() *Workflow
	ttl         time.Duration
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

func NewRegistry(newWorkflow func() *Workflow, ttl time.Duration) *Registry {
	return &Registry{
		newWorkflow: newWorkflow,
		ttl:         ttl,
		now:         time.Now,
		sessions:    make(map[string]*session),
	}
}

func (r *Registry) Create() (string, *Workflow) {
	id := uuid.NewString()
	wf := r.newWorkflow()

	r.mu.Lock()
	r.sessions[id] = &session{workflow: wf, lastSeen: r.now()}
	r.mu.Unlock()
	return id, wf
}

// Get mengembalikan workflow milik sesi dan memperbarui waktu akses terakhirnya.
func (r *Registry) Get(id string) (*Workflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.lastSeen = r.now()
	return s.workflow, nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep menghapus sesi yang tidak disentuh lebih lama dari TTL. Sesi dengan request
// yang masih berjalan dilewati.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) && !s.workflow.Pending() {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run menjalankan Sweep secara berkala sampai ctx selesai.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				log.WithField("removed", n).Debug("expired symptom checker sessions")
			}
		}
	}
}
