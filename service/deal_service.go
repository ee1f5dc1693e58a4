package service

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"flip-agent/domain"
	"flip-agent/repository"
)

// DraftKey is the key/value-store slot holding the last calculated input.
const DraftKey = "deal:draft"

// BuildReport runs the full computation pipeline on one input snapshot.
// Validation errors do not stop the computation: the report always carries
// numbers, marked valid or not.
func BuildReport(input domain.DealInput) domain.DealReport {
	project := ComputeProject(input)
	return domain.DealReport{
		Input:       input,
		Derived:     ComputeDerived(input),
		Project:     project,
		Investor:    ComputeInvestor(input, project),
		Sensitivity: ComputeSensitivity(input, project),
		Validation:  ValidateInput(input),
	}
}

// DealService orchestrates computation, draft autosave and the saved-deal
// store.
type DealService struct {
	repo  repository.DealRepository
	cache repository.CacheRepository
}

// NewDealService creates a DealService on top of the given stores.
func NewDealService(repo repository.DealRepository, cache repository.CacheRepository) *DealService {
	return &DealService{repo: repo, cache: cache}
}

// Calculate computes the full report and autosaves the input as the
// current draft. The autosave is not critical: failures are logged only.
func (s *DealService) Calculate(input domain.DealInput) domain.DealReport {
	report := BuildReport(input)

	if s.cache != nil {
		if data, err := json.Marshal(input); err == nil {
			if err := s.cache.Set(DraftKey, string(data)); err != nil {
				log.Printf("Warning: failed to autosave deal draft: %v", err)
			}
		}
	}

	return report
}

// LoadDraft restores the last autosaved input, if any.
func (s *DealService) LoadDraft() (domain.DealInput, bool) {
	if s.cache == nil {
		return domain.DealInput{}, false
	}
	data, ok := s.cache.Get(DraftKey)
	if !ok {
		return domain.DealInput{}, false
	}
	var input domain.DealInput
	if err := json.Unmarshal([]byte(data), &input); err != nil {
		log.Printf("Warning: discarding unreadable deal draft: %v", err)
		return domain.DealInput{}, false
	}
	return input, true
}

// SaveDeal stores a named copy of the input in the deal repository.
func (s *DealService) SaveDeal(name string, input domain.DealInput) (domain.SavedDeal, error) {
	if name == "" {
		return domain.SavedDeal{}, errors.New("deal name is required")
	}

	deal := domain.SavedDeal{
		ID:      uuid.NewString(),
		Name:    name,
		Input:   input,
		SavedAt: time.Now(),
	}
	if err := s.repo.Save(deal); err != nil {
		return domain.SavedDeal{}, err
	}
	return deal, nil
}

// ListDeals returns all saved deals, most recent first.
func (s *DealService) ListDeals() ([]domain.SavedDeal, error) {
	return s.repo.List()
}

// DeleteDeal removes a saved deal by ID.
func (s *DealService) DeleteDeal(id string) error {
	if id == "" {
		return errors.New("deal id is required")
	}
	return s.repo.Delete(id)
}
