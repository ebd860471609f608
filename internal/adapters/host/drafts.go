package host

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/checkout-fel/internal/domain"
	"github.com/jsamuelsen11/checkout-fel/internal/domain/partner"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

var _ ports.DraftStore = (*DraftStore)(nil)

// DraftStore keeps one contact draft per open editing session.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[int64]partner.ContactDraft
}

// NewDraftStore returns a store with no open sessions.
func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[int64]partner.ContactDraft)}
}

func (s *DraftStore) Begin(_ context.Context, draft partner.ContactDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.PartnerID] = draft
	return nil
}

func (s *DraftStore) Get(_ context.Context, partnerID int64) (partner.ContactDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.drafts[partnerID]
	if !ok {
		return partner.ContactDraft{}, notOpen(partnerID)
	}
	return d, nil
}

func (s *DraftStore) Save(_ context.Context, draft partner.ContactDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[draft.PartnerID]; !ok {
		return notOpen(draft.PartnerID)
	}
	s.drafts[draft.PartnerID] = draft
	return nil
}

func (s *DraftStore) Discard(_ context.Context, partnerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[partnerID]; !ok {
		return notOpen(partnerID)
	}
	delete(s.drafts, partnerID)
	return nil
}

func notOpen(partnerID int64) error {
	return fmt.Errorf("no editing session for partner %d: %w", partnerID, domain.ErrNotFound)
}
