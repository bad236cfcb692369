package service

import (
	"errors"
	"fmt"

	"chipstock/internal/domain"
	"chipstock/internal/repository"
)

var (
	ErrChipNotFound = errors.New("chip not found")
	ErrDuplicateID  = errors.New("product id already exists")
)

// InventoryService defines the business operations over the chip inventory.
// Not-found outcomes are normal control flow reported via ErrChipNotFound;
// only persistence failures are operational errors.
type InventoryService interface {
	ListChips() []domain.Chip
	FindChip(id int) (domain.Chip, error)
	HasChip(id int) bool
	AddChip(chip domain.Chip) error
	UpdateChip(chip domain.Chip) error
	RemoveChip(id int) error
}

type inventoryService struct {
	chipRepo repository.ChipRepository
}

// NewInventoryService creates a new instance of InventoryService.
func NewInventoryService(chipRepo repository.ChipRepository) InventoryService {
	return &inventoryService{chipRepo: chipRepo}
}

// ListChips returns all records in store order.
func (s *inventoryService) ListChips() []domain.Chip {
	return s.chipRepo.List()
}

// FindChip retrieves a record by product id.
func (s *inventoryService) FindChip(id int) (domain.Chip, error) {
	chip, err := s.chipRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrChipNotFound) {
			return domain.Chip{}, ErrChipNotFound
		}
		return domain.Chip{}, fmt.Errorf("failed to find chip: %w", err)
	}
	return chip, nil
}

// HasChip reports whether a record with the given product id exists. The add
// prompt uses this as the uniqueness gate; it is the only place duplicate ids
// are prevented.
func (s *inventoryService) HasChip(id int) bool {
	_, err := s.chipRepo.FindByID(id)
	return err == nil
}

// AddChip appends a new record and persists the store.
func (s *inventoryService) AddChip(chip domain.Chip) error {
	if err := s.chipRepo.Create(chip); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return fmt.Errorf("%w: %d", ErrDuplicateID, chip.ProductID)
		}
		return fmt.Errorf("failed to add chip: %w", err)
	}
	return nil
}

// UpdateChip replaces the record matching chip.ProductID and persists the
// store.
func (s *inventoryService) UpdateChip(chip domain.Chip) error {
	if err := s.chipRepo.Update(chip); err != nil {
		if errors.Is(err, repository.ErrChipNotFound) {
			return ErrChipNotFound
		}
		return fmt.Errorf("failed to update chip: %w", err)
	}
	return nil
}

// RemoveChip deletes the record matching id and persists the store.
func (s *inventoryService) RemoveChip(id int) error {
	if err := s.chipRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrChipNotFound) {
			return ErrChipNotFound
		}
		return fmt.Errorf("failed to remove chip: %w", err)
	}
	return nil
}
