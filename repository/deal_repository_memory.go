package repository

import (
	"fmt"
	"sort"
	"sync"

	"flip-agent/domain"
)

// DealRepositoryMemory is an in-memory implementation of DealRepository.
type DealRepositoryMemory struct {
	mu    sync.RWMutex
	deals map[string]domain.SavedDeal
}

// NewDealRepositoryMemory creates a new in-memory deal repository.
func NewDealRepositoryMemory() *DealRepositoryMemory {
	return &DealRepositoryMemory{
		deals: make(map[string]domain.SavedDeal),
	}
}

// Save stores or replaces a deal by its ID.
func (r *DealRepositoryMemory) Save(deal domain.SavedDeal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deals[deal.ID] = deal
	return nil
}

// List returns all saved deals, most recently saved first.
func (r *DealRepositoryMemory) List() ([]domain.SavedDeal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	deals := make([]domain.SavedDeal, 0, len(r.deals))
	for _, d := range r.deals {
		deals = append(deals, d)
	}
	sort.Slice(deals, func(i, j int) bool {
		return deals[i].SavedAt.After(deals[j].SavedAt)
	})
	return deals, nil
}

// Delete removes a deal by ID.
func (r *DealRepositoryMemory) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.deals[id]; !ok {
		return fmt.Errorf("deal %q not found", id)
	}
	delete(r.deals, id)
	return nil
}
