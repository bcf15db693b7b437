package document

import (
	"context"
	"sort"
	"sync"

	"dealgate/internal/investor/models"
	"dealgate/pkg/platform/sentinel"
)

// InMemory is the in-process KYC document store. Documents are append-only;
// a newer upload of the same type marks the prior pending one superseded.
type InMemory struct {
	mu   sync.RWMutex
	docs map[models.DocumentID]*models.KYCDocument
}

func NewInMemory() *InMemory {
	return &InMemory{docs: make(map[models.DocumentID]*models.KYCDocument)}
}

func clone(doc *models.KYCDocument) *models.KYCDocument {
	cp := *doc
	return &cp
}

func (s *InMemory) Append(_ context.Context, doc *models.KYCDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.docs {
		if existing.InvestorID == doc.InvestorID &&
			existing.Type == doc.Type &&
			existing.Status == models.DocumentPending {
			existing.Status = models.DocumentSuperseded
		}
	}
	s.docs[doc.ID] = clone(doc)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id models.DocumentID) (*models.KYCDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(doc), nil
}

func (s *InMemory) ListByInvestor(_ context.Context, investorID models.InvestorID) ([]*models.KYCDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.KYCDocument
	for _, doc := range s.docs {
		if doc.InvestorID == investorID {
			out = append(out, clone(doc))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}

func (s *InMemory) Execute(_ context.Context, id models.DocumentID,
	validate func(*models.KYCDocument) error,
	mutate func(*models.KYCDocument)) (*models.KYCDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if err := validate(doc); err != nil {
		return nil, err
	}
	mutate(doc)
	return clone(doc), nil
}
