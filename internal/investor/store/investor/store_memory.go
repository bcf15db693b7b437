package investor

import (
	"context"
	"sort"
	"sync"
	"time"

	"dealgate/internal/investor/models"
	"dealgate/pkg/platform/sentinel"
)

// InMemory is the in-process investor store for unit tests and dev mode.
// A single mutex serializes Execute's validate+mutate against every other
// access, which is the whole point of the Execute contract: a racing
// writer re-validates against current state, never a stale read.
type InMemory struct {
	mu        sync.RWMutex
	investors map[models.InvestorID]*models.Investor
	byAccount map[string]models.InvestorID
}

func NewInMemory() *InMemory {
	return &InMemory{
		investors: make(map[models.InvestorID]*models.Investor),
		byAccount: make(map[string]models.InvestorID),
	}
}

// clone returns a shallow copy. Safe because mutators assign fresh
// pointers instead of writing through existing ones.
func clone(inv *models.Investor) *models.Investor {
	cp := *inv
	return &cp
}

func (s *InMemory) CreateIfAccountAvailable(_ context.Context, inv *models.Investor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byAccount[inv.AccountID]; exists {
		return sentinel.ErrConflict
	}
	s.investors[inv.ID] = clone(inv)
	s.byAccount[inv.AccountID] = inv.ID
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id models.InvestorID) (*models.Investor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.investors[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(inv), nil
}

func (s *InMemory) FindByAccountID(_ context.Context, accountID string) (*models.Investor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byAccount[accountID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(s.investors[id]), nil
}

func (s *InMemory) List(_ context.Context, filter models.ListFilter, now time.Time) ([]*models.Investor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Investor
	for _, inv := range s.investors {
		if !matches(inv, filter, now) {
			continue
		}
		out = append(out, clone(inv))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func matches(inv *models.Investor, filter models.ListFilter, now time.Time) bool {
	if filter.Status != nil && inv.Status != *filter.Status {
		return false
	}
	if filter.Classification != nil && inv.CountryClassification != *filter.Classification {
		return false
	}
	if filter.Accredited != nil && inv.IsAccredited != *filter.Accredited {
		return false
	}
	if filter.KYCExpired && !inv.KYCExpiredAt(now) {
		return false
	}
	return true
}

// Execute runs validate then mutate on the stored record under the store
// lock. A validate error leaves the record untouched; the returned copy
// reflects the post-mutation state.
func (s *InMemory) Execute(_ context.Context, id models.InvestorID,
	validate func(*models.Investor) error,
	mutate func(*models.Investor)) (*models.Investor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.investors[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if err := validate(inv); err != nil {
		return nil, err
	}
	mutate(inv)
	return clone(inv), nil
}
