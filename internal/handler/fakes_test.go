package handler

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	apperrors "gymplan/internal/errors"
	"gymplan/internal/model"
	"gymplan/internal/planner"
	"gymplan/internal/repository"
	"gymplan/internal/session"
)

// fakeAccountRepo is an in-memory AccountRepository for handler tests.
type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*model.Account
}

var _ repository.AccountRepository = (*fakeAccountRepo)(nil)

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*model.Account)}
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *model.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Username == account.Username || a.Email == account.Email {
			return apperrors.ErrAccountConflict
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	cp := *account
	r.accounts[account.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, apperrors.ErrAccountNotFound
}

// fakeProfileRepo is an in-memory ProfileRepository keyed on account id.
type fakeProfileRepo struct {
	mu        sync.Mutex
	profiles  map[uuid.UUID]*model.Profile
	existsErr error
}

var _ repository.ProfileRepository = (*fakeProfileRepo)(nil)

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*model.Profile)}
}

func (r *fakeProfileRepo) FindByAccount(ctx context.Context, accountID uuid.UUID) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[accountID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, apperrors.ErrProfileNotFound
}

func (r *fakeProfileRepo) Upsert(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.profiles[profile.AccountID]
	if ok {
		existing.Name = profile.Name
		existing.Age = profile.Age
		existing.Weight = profile.Weight
		existing.DietaryPreference = profile.DietaryPreference
		existing.TargetBodyType = profile.TargetBodyType
		cp := *existing
		return &cp, nil
	}
	cp := *profile
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	r.profiles[profile.AccountID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeProfileRepo) SetWorkoutPlan(ctx context.Context, accountID uuid.UUID, plan string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[accountID]
	if !ok {
		return apperrors.ErrProfileNotFound
	}
	p.WorkoutPlan = plan
	return nil
}

func (r *fakeProfileRepo) ExistsByAccount(ctx context.Context, accountID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.existsErr != nil {
		return false, r.existsErr
	}
	_, ok := r.profiles[accountID]
	return ok, nil
}

func (r *fakeProfileRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.profiles)
}

// recordingStore wraps the memory session store and remembers every token it
// ever issued, so tests can check sessions were cleaned up.
type recordingStore struct {
	*session.MemoryStore
	mu     sync.Mutex
	tokens []string
}

var _ session.Store = (*recordingStore)(nil)

func (s *recordingStore) Create(ctx context.Context, sess session.Session) error {
	s.mu.Lock()
	s.tokens = append(s.tokens, sess.Token)
	s.mu.Unlock()
	return s.MemoryStore.Create(ctx, sess)
}

// stubGenerator returns a fixed plan, or fails when told to.
type stubGenerator struct {
	plan string
	fail bool
}

var _ planner.Generator = (*stubGenerator)(nil)

func (g *stubGenerator) GeneratePlan(ctx context.Context, req planner.PlanRequest) (string, error) {
	if g.fail {
		return "", errors.New("generation service unavailable")
	}
	return g.plan, nil
}
