package repository

import (
	"path/filepath"
	"reflect"
	"testing"

	"chipstock/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"
)

// Saving a collection and loading it back yields the same records, field for
// field, in the same order.
func TestProperty_SaveLoadRoundTripPreservesRecords(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("reloading the data file preserves all records in order", prop.ForAll(
		func(names []string, quantity, price int) bool {
			path := filepath.Join(t.TempDir(), "chips.csv")

			repo, err := NewFileChipRepository(path, zap.NewNop())
			if err != nil {
				t.Logf("FAIL: could not open repository: %v", err)
				return false
			}

			for i, name := range names {
				chip := domain.Chip{
					ProductID:   i + 1,
					ProductName: name,
					Quantity:    quantity,
					SellerName:  name,
					Price:       price,
					BrandName:   name,
					Deadstock:   i,
				}
				if err := repo.Create(chip); err != nil {
					t.Logf("FAIL: could not create chip %d: %v", i+1, err)
					return false
				}
			}

			reloaded, err := NewFileChipRepository(path, zap.NewNop())
			if err != nil {
				t.Logf("FAIL: could not reopen repository: %v", err)
				return false
			}

			return reflect.DeepEqual(repo.List(), reloaded.List())
		},
		gen.SliceOf(gen.AlphaString()),
		gen.IntRange(0, 10_000),
		gen.IntRange(0, 100_000),
	))

	properties.TestingRun(t)
}
