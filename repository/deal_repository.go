package repository

import "flip-agent/domain"

// DealRepository stores named deal inputs.
type DealRepository interface {
	Save(deal domain.SavedDeal) error
	List() ([]domain.SavedDeal, error)
	Delete(id string) error
}
