// Package repotest provides in-memory repositories for tests. A Store
// enforces the same referential rules as the database: deleting a travel
// cascades to its participants and detaches its finance entries.
package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/LovationAdmin/travel-api/models"
	"github.com/LovationAdmin/travel-api/repository"
)

type Store struct {
	mu sync.Mutex

	nextID       uint
	travels      map[uint]models.Travel
	participants map[uint]models.Participant
	finances     map[uint]models.Finance
	contacts     map[uint]models.Contact
	users        map[uint]models.User
}

func NewStore() *Store {
	return &Store{
		travels:      make(map[uint]models.Travel),
		participants: make(map[uint]models.Participant),
		finances:     make(map[uint]models.Finance),
		contacts:     make(map[uint]models.Contact),
		users:        make(map[uint]models.User),
	}
}

func (s *Store) Travels() *TravelRepo           { return &TravelRepo{s} }
func (s *Store) Participants() *ParticipantRepo { return &ParticipantRepo{s} }
func (s *Store) Finances() *FinanceRepo         { return &FinanceRepo{s} }
func (s *Store) Contacts() *ContactRepo         { return &ContactRepo{s} }
func (s *Store) Users() *UserRepo               { return &UserRepo{s} }

// Reset drops every row; ids keep increasing.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.travels = make(map[uint]models.Travel)
	s.participants = make(map[uint]models.Participant)
	s.finances = make(map[uint]models.Finance)
	s.contacts = make(map[uint]models.Contact)
	s.users = make(map[uint]models.User)
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

func (s *Store) ref(id *uint) *models.TravelRef {
	if id == nil {
		return nil
	}
	t, ok := s.travels[*id]
	if !ok {
		return nil
	}
	return t.Ref()
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func stamp(created *time.Time, updated *time.Time) {
	now := time.Now()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

// ---------------------------------------------------------------------------
// Travels
// ---------------------------------------------------------------------------

type TravelRepo struct{ s *Store }

var _ repository.TravelRepository = (*TravelRepo)(nil)

func (r *TravelRepo) List(_ context.Context) ([]models.Travel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Travel, 0, len(r.s.travels))
	for _, id := range sortedKeys(r.s.travels) {
		out = append(out, r.s.travels[id])
	}
	return out, nil
}

func (r *TravelRepo) Get(_ context.Context, id uint) (*models.Travel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.travels[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r *TravelRepo) Exists(_ context.Context, id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.travels[id]
	return ok, nil
}

func (r *TravelRepo) Create(_ context.Context, t *models.Travel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t.ID = r.s.id()
	stamp(&t.CreatedAt, &t.UpdatedAt)
	r.s.travels[t.ID] = *t
	return nil
}

func (r *TravelRepo) Update(_ context.Context, t *models.Travel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.travels[t.ID]; !ok {
		return repository.ErrNotFound
	}
	stamp(&t.CreatedAt, &t.UpdatedAt)
	r.s.travels[t.ID] = *t
	return nil
}

func (r *TravelRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.travels[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.travels, id)
	for pid, p := range r.s.participants {
		if p.TravelID == id {
			delete(r.s.participants, pid)
		}
	}
	for fid, f := range r.s.finances {
		if f.TravelID != nil && *f.TravelID == id {
			f.TravelID = nil
			r.s.finances[fid] = f
		}
	}
	return nil
}

func (r *TravelRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.travels)), nil
}

// ---------------------------------------------------------------------------
// Participants
// ---------------------------------------------------------------------------

type ParticipantRepo struct{ s *Store }

var _ repository.ParticipantRepository = (*ParticipantRepo)(nil)

func (r *ParticipantRepo) filter(keep func(models.Participant) bool) []models.Participant {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Participant, 0)
	for _, id := range sortedKeys(r.s.participants) {
		p := r.s.participants[id]
		if keep(p) {
			p.Travel = r.s.ref(&p.TravelID)
			out = append(out, p)
		}
	}
	return out
}

func (r *ParticipantRepo) List(_ context.Context) ([]models.Participant, error) {
	return r.filter(func(models.Participant) bool { return true }), nil
}

func (r *ParticipantRepo) ListByTravel(_ context.Context, travelID uint) ([]models.Participant, error) {
	return r.filter(func(p models.Participant) bool { return p.TravelID == travelID }), nil
}

func (r *ParticipantRepo) Get(_ context.Context, id uint) (*models.Participant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.participants[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Travel = r.s.ref(&p.TravelID)
	return &p, nil
}

func (r *ParticipantRepo) Create(_ context.Context, p *models.Participant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.travels[p.TravelID]; !ok {
		return repository.ErrNotFound
	}
	p.ID = r.s.id()
	stamp(&p.CreatedAt, &p.UpdatedAt)
	p.Travel = nil
	r.s.participants[p.ID] = *p
	return nil
}

func (r *ParticipantRepo) Update(_ context.Context, p *models.Participant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.participants[p.ID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := r.s.travels[p.TravelID]; !ok {
		return repository.ErrNotFound
	}
	stamp(&p.CreatedAt, &p.UpdatedAt)
	row := *p
	row.Travel = nil
	r.s.participants[p.ID] = row
	return nil
}

func (r *ParticipantRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.participants[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.participants, id)
	return nil
}

func (r *ParticipantRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.participants)), nil
}

// ---------------------------------------------------------------------------
// Finances
// ---------------------------------------------------------------------------

type FinanceRepo struct{ s *Store }

var _ repository.FinanceRepository = (*FinanceRepo)(nil)

func (r *FinanceRepo) filter(keep func(models.Finance) bool) []models.Finance {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Finance, 0)
	for _, id := range sortedKeys(r.s.finances) {
		f := r.s.finances[id]
		if keep(f) {
			f.Travel = r.s.ref(f.TravelID)
			out = append(out, f)
		}
	}
	return out
}

func (r *FinanceRepo) List(_ context.Context) ([]models.Finance, error) {
	return r.filter(func(models.Finance) bool { return true }), nil
}

func (r *FinanceRepo) ListByTravel(_ context.Context, travelID uint) ([]models.Finance, error) {
	return r.filter(func(f models.Finance) bool {
		return f.TravelID != nil && *f.TravelID == travelID
	}), nil
}

func (r *FinanceRepo) Get(_ context.Context, id uint) (*models.Finance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.finances[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	f.Travel = r.s.ref(f.TravelID)
	return &f, nil
}

func (r *FinanceRepo) checkTravel(id *uint) error {
	if id == nil {
		return nil
	}
	if _, ok := r.s.travels[*id]; !ok {
		return repository.ErrNotFound
	}
	return nil
}

func (r *FinanceRepo) Create(_ context.Context, f *models.Finance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkTravel(f.TravelID); err != nil {
		return err
	}
	f.ID = r.s.id()
	stamp(&f.CreatedAt, &f.UpdatedAt)
	row := *f
	row.Travel = nil
	r.s.finances[f.ID] = row
	return nil
}

func (r *FinanceRepo) Update(_ context.Context, f *models.Finance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.finances[f.ID]; !ok {
		return repository.ErrNotFound
	}
	if err := r.checkTravel(f.TravelID); err != nil {
		return err
	}
	stamp(&f.CreatedAt, &f.UpdatedAt)
	row := *f
	row.Travel = nil
	r.s.finances[f.ID] = row
	return nil
}

func (r *FinanceRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.finances[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.finances, id)
	return nil
}

func (r *FinanceRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.finances)), nil
}

// ---------------------------------------------------------------------------
// Contacts
// ---------------------------------------------------------------------------

type ContactRepo struct{ s *Store }

var _ repository.ContactRepository = (*ContactRepo)(nil)

func (r *ContactRepo) List(_ context.Context) ([]models.Contact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Contact, 0, len(r.s.contacts))
	for _, id := range sortedKeys(r.s.contacts) {
		out = append(out, r.s.contacts[id])
	}
	return out, nil
}

func (r *ContactRepo) Search(_ context.Context, term string) ([]models.Contact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	needle := strings.ToLower(term)
	out := make([]models.Contact, 0)
	for _, id := range sortedKeys(r.s.contacts) {
		c := r.s.contacts[id]
		for _, field := range []string{c.FirstName, c.LastName, c.Email, c.Organization} {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (r *ContactRepo) Get(_ context.Context, id uint) (*models.Contact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.contacts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *ContactRepo) Create(_ context.Context, c *models.Contact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.id()
	stamp(&c.CreatedAt, &c.UpdatedAt)
	r.s.contacts[c.ID] = *c
	return nil
}

func (r *ContactRepo) Update(_ context.Context, c *models.Contact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.contacts[c.ID]; !ok {
		return repository.ErrNotFound
	}
	stamp(&c.CreatedAt, &c.UpdatedAt)
	r.s.contacts[c.ID] = *c
	return nil
}

func (r *ContactRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.contacts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.contacts, id)
	return nil
}

func (r *ContactRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.contacts)), nil
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type UserRepo struct{ s *Store }

var _ repository.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepo) Create(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = r.s.id()
	stamp(&u.CreatedAt, &u.UpdatedAt)
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) Update(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	stamp(&u.CreatedAt, &u.UpdatedAt)
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.users)), nil
}
