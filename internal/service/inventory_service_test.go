package service

import (
	"errors"
	"fmt"
	"testing"

	"chipstock/internal/domain"
	"chipstock/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock repository for testing
type mockChipRepository struct {
	chips   []domain.Chip
	saveErr error
}

func newMockChipRepository(chips ...domain.Chip) *mockChipRepository {
	return &mockChipRepository{chips: chips}
}

func (m *mockChipRepository) List() []domain.Chip {
	chips := make([]domain.Chip, len(m.chips))
	copy(chips, m.chips)
	return chips
}

func (m *mockChipRepository) FindByID(id int) (domain.Chip, error) {
	for _, chip := range m.chips {
		if chip.ProductID == id {
			return chip, nil
		}
	}
	return domain.Chip{}, repository.ErrChipNotFound
}

func (m *mockChipRepository) Create(chip domain.Chip) error {
	if _, err := m.FindByID(chip.ProductID); err == nil {
		return fmt.Errorf("%w: %d", repository.ErrDuplicateID, chip.ProductID)
	}
	m.chips = append(m.chips, chip)
	return m.saveErr
}

func (m *mockChipRepository) Update(chip domain.Chip) error {
	for i := range m.chips {
		if m.chips[i].ProductID == chip.ProductID {
			m.chips[i] = chip
			return m.saveErr
		}
	}
	return repository.ErrChipNotFound
}

func (m *mockChipRepository) Delete(id int) error {
	for i := range m.chips {
		if m.chips[i].ProductID == id {
			m.chips = append(m.chips[:i], m.chips[i+1:]...)
			return m.saveErr
		}
	}
	return repository.ErrChipNotFound
}

func sampleChip(id int) domain.Chip {
	return domain.Chip{
		ProductID:   id,
		ProductName: "Salty Wave",
		Quantity:    10,
		SellerName:  "Acme Traders",
		Price:       100,
		BrandName:   "CrunchCo",
	}
}

func TestAddChipRejectsDuplicateID(t *testing.T) {
	repo := newMockChipRepository(sampleChip(7))
	svc := NewInventoryService(repo)

	err := svc.AddChip(sampleChip(7))

	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Len(t, repo.List(), 1)
}

func TestAddChipAppendsRecord(t *testing.T) {
	repo := newMockChipRepository(sampleChip(7))
	svc := NewInventoryService(repo)

	require.NoError(t, svc.AddChip(sampleChip(8)))

	chips := repo.List()
	require.Len(t, chips, 2)
	assert.Equal(t, 8, chips[1].ProductID)
}

func TestAddChipSurfacesPersistenceFailure(t *testing.T) {
	repo := newMockChipRepository()
	repo.saveErr = errors.New("disk full")
	svc := NewInventoryService(repo)

	err := svc.AddChip(sampleChip(7))

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateID)
	// The in-memory change survives a failed save; only durability is lost.
	assert.Len(t, repo.List(), 1)
}

func TestFindChipNotFound(t *testing.T) {
	svc := NewInventoryService(newMockChipRepository())

	_, err := svc.FindChip(42)
	assert.ErrorIs(t, err, ErrChipNotFound)
}

func TestHasChip(t *testing.T) {
	svc := NewInventoryService(newMockChipRepository(sampleChip(7)))

	assert.True(t, svc.HasChip(7))
	assert.False(t, svc.HasChip(8))
}

func TestUpdateChipNotFound(t *testing.T) {
	svc := NewInventoryService(newMockChipRepository())

	err := svc.UpdateChip(sampleChip(42))
	assert.ErrorIs(t, err, ErrChipNotFound)
}

func TestRemoveChipNotFoundLeavesStoreUnchanged(t *testing.T) {
	repo := newMockChipRepository(sampleChip(7))
	svc := NewInventoryService(repo)

	err := svc.RemoveChip(42)

	assert.ErrorIs(t, err, ErrChipNotFound)
	assert.Len(t, repo.List(), 1)
}
