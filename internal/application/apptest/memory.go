// Package apptest provides in-memory repositories for service and handler tests.
// Saves honour the same version check as the MongoDB stores.
package apptest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/oksasatya/go-social-network/internal/domain/entity"
	repo "github.com/oksasatya/go-social-network/internal/domain/repository"
)

var (
	_ repo.UserRepository    = (*Users)(nil)
	_ repo.ProfileRepository = (*Profiles)(nil)
	_ repo.PostRepository    = (*Posts)(nil)
	_ repo.AuditRepository   = (*AuditRecorder)(nil)
	_ repo.TokenDenylist     = (*Denylist)(nil)
)

// Users assigns ids "u1", "u2", ... and enforces unique emails.
type Users struct {
	mu   sync.Mutex
	seq  int
	byID map[string]entity.User
}

func NewUsers() *Users { return &Users{byID: map[string]entity.User{}} }

func (m *Users) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.byID {
		if e.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	m.seq++
	u.ID = fmt.Sprintf("u%d", m.seq)
	m.byID[u.ID] = *u
	return nil
}

func (m *Users) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &u, nil
}

func (m *Users) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *Users) GetByIDs(_ context.Context, ids []string) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.User
	for _, id := range ids {
		if u, ok := m.byID[id]; ok {
			u := u
			out = append(out, &u)
		}
	}
	return out, nil
}

func (m *Users) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func cloneProfile(p entity.Profile) *entity.Profile {
	p.Skills = append([]string(nil), p.Skills...)
	p.Experience = append([]entity.Experience{}, p.Experience...)
	p.Education = append([]entity.Education{}, p.Education...)
	p.User = nil
	return &p
}

type Profiles struct {
	mu   sync.Mutex
	seq  int
	byID map[string]entity.Profile
	// SaveHook runs before a save is applied; used to simulate a concurrent writer
	SaveHook func(p *entity.Profile)
}

func NewProfiles() *Profiles { return &Profiles{byID: map[string]entity.Profile{}} }

func (m *Profiles) Create(_ context.Context, p *entity.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.byID {
		if e.UserID == p.UserID {
			return repo.ErrDuplicate
		}
	}
	m.seq++
	p.ID = fmt.Sprintf("p%d", m.seq)
	p.Version = 1
	m.byID[p.ID] = *cloneProfile(*p)
	return nil
}

func (m *Profiles) GetByID(_ context.Context, id string) (*entity.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return cloneProfile(p), nil
}

func (m *Profiles) GetByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.byID {
		if p.UserID == userID {
			return cloneProfile(p), nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *Profiles) List(_ context.Context) ([]*entity.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Profile, 0, len(m.byID))
	for _, p := range m.byID {
		out = append(out, cloneProfile(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Profiles) Save(_ context.Context, p *entity.Profile) error {
	if m.SaveHook != nil {
		m.SaveHook(p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.byID[p.ID]
	if !ok {
		return repo.ErrNotFound
	}
	if cur.Version != p.Version {
		return repo.ErrVersionConflict
	}
	p.Version++
	m.byID[p.ID] = *cloneProfile(*p)
	return nil
}

func (m *Profiles) DeleteByUserID(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, p := range m.byID {
		if p.UserID == userID {
			delete(m.byID, id)
			return nil
		}
	}
	return repo.ErrNotFound
}

// bump simulates another writer committing in between.
func (m *Profiles) Bump(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.byID[id]
	p.Version++
	m.byID[id] = p
}

func clonePost(p entity.Post) *entity.Post {
	p.Likes = append([]entity.Like{}, p.Likes...)
	p.Comments = append([]entity.Comment{}, p.Comments...)
	return &p
}

type Posts struct {
	mu       sync.Mutex
	seq      int
	byID     map[string]entity.Post
	SaveHook func(p *entity.Post)
}

func NewPosts() *Posts { return &Posts{byID: map[string]entity.Post{}} }

func (m *Posts) Create(_ context.Context, p *entity.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	p.ID = fmt.Sprintf("post%d", m.seq)
	p.Version = 1
	m.byID[p.ID] = *clonePost(*p)
	return nil
}

func (m *Posts) GetByID(_ context.Context, id string) (*entity.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return clonePost(p), nil
}

func (m *Posts) List(_ context.Context) ([]*entity.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Post, 0, len(m.byID))
	for _, p := range m.byID {
		out = append(out, clonePost(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *Posts) Save(_ context.Context, p *entity.Post) error {
	if m.SaveHook != nil {
		m.SaveHook(p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.byID[p.ID]
	if !ok {
		return repo.ErrNotFound
	}
	if cur.Version != p.Version {
		return repo.ErrVersionConflict
	}
	p.Version++
	m.byID[p.ID] = *clonePost(*p)
	return nil
}

func (m *Posts) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *Posts) DeleteByUserID(_ context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, p := range m.byID {
		if p.UserID == userID {
			delete(m.byID, id)
			n++
		}
	}
	return n, nil
}

func (m *Posts) PullUserActivity(_ context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, p := range m.byID {
		cp := clonePost(p)
		changed := cp.RemoveLike(userID)
		kept := cp.Comments[:0]
		for _, c := range cp.Comments {
			if c.UserID == userID {
				changed = true
				continue
			}
			kept = append(kept, c)
		}
		cp.Comments = kept
		if changed {
			cp.Version++
			m.byID[id] = *cp
			n++
		}
	}
	return n, nil
}

func (m *Posts) Bump(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.byID[id]
	p.Version++
	m.byID[id] = p
}

type AuditRecorder struct {
	mu     sync.Mutex
	Events []entity.AuditEvent
}

func (r *AuditRecorder) Record(_ context.Context, ev entity.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, ev)
	return nil
}

func (r *AuditRecorder) Actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		out = append(out, e.Action)
	}
	return out
}

// Publisher collects published jobs; a non-nil Err fails every publish.
type Publisher struct {
	mu   sync.Mutex
	Jobs []any
	Err  error
}

func (r *Publisher) PublishJSON(_ context.Context, body any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Jobs = append(r.Jobs, body)
	return nil
}

type Denylist struct {
	mu      sync.Mutex
	Revoked map[string]time.Time
}

func (d *Denylist) Revoke(_ context.Context, tokenID string, until time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Revoked == nil {
		d.Revoked = map[string]time.Time{}
	}
	d.Revoked[tokenID] = until
	return nil
}

func (d *Denylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.Revoked[tokenID]
	return ok, nil
}
