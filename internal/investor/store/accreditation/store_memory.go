package accreditation

import (
	"context"
	"sort"
	"sync"

	"dealgate/internal/investor/models"
)

// InMemory keeps the accreditation assessment history in process.
// Append-only: history is never rewritten.
type InMemory struct {
	mu   sync.RWMutex
	recs map[models.InvestorID][]models.AccreditationVerification
}

func NewInMemory() *InMemory {
	return &InMemory{recs: make(map[models.InvestorID][]models.AccreditationVerification)}
}

func (s *InMemory) Append(_ context.Context, rec *models.AccreditationVerification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[rec.InvestorID] = append(s.recs[rec.InvestorID], *rec)
	return nil
}

func (s *InMemory) ListByInvestor(_ context.Context, investorID models.InvestorID) ([]*models.AccreditationVerification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := s.recs[investorID]
	out := make([]*models.AccreditationVerification, 0, len(recs))
	for i := range recs {
		cp := recs[i]
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].VerifiedAt.After(out[j].VerifiedAt)
	})
	return out, nil
}
