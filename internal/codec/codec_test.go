package codec

import (
	"testing"

	"chipstock/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValidLine(t *testing.T) {
	chip, err := Decode("7,Salty Wave,10,Acme Traders,100,CrunchCo,3")
	require.NoError(t, err)

	assert.Equal(t, domain.Chip{
		ProductID:   7,
		ProductName: "Salty Wave",
		Quantity:    10,
		SellerName:  "Acme Traders",
		Price:       100,
		BrandName:   "CrunchCo",
		Deadstock:   3,
	}, chip)
}

func TestDecodeRejectsShortLine(t *testing.T) {
	_, err := Decode("7,Salty Wave,10,Acme Traders,100")
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestDecodeRejectsNonIntegerFields(t *testing.T) {
	cases := map[string]string{
		"id":       "x,Salty Wave,10,Acme Traders,100,CrunchCo,0",
		"quantity": "7,Salty Wave,ten,Acme Traders,100,CrunchCo,0",
		"price":    "7,Salty Wave,10,Acme Traders,cheap,CrunchCo,0",
	}

	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(line)
			assert.ErrorIs(t, err, ErrMalformedLine)
		})
	}
}

func TestDecodeDeadstockDefaultsToZero(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		chip, err := Decode("7,Salty Wave,10,Acme Traders,100,CrunchCo")
		require.NoError(t, err)
		assert.Equal(t, 0, chip.Deadstock)
	})

	t.Run("unparseable", func(t *testing.T) {
		chip, err := Decode("7,Salty Wave,10,Acme Traders,100,CrunchCo,n/a")
		require.NoError(t, err)
		assert.Equal(t, 0, chip.Deadstock)
	})

	t.Run("trailing comma", func(t *testing.T) {
		chip, err := Decode("7,Salty Wave,10,Acme Traders,100,CrunchCo,")
		require.NoError(t, err)
		assert.Equal(t, 0, chip.Deadstock)
	})
}

func TestDecodeAllowsEmptyTextFields(t *testing.T) {
	chip, err := Decode("7,,10,,100,,0")
	require.NoError(t, err)
	assert.Empty(t, chip.ProductName)
	assert.Empty(t, chip.SellerName)
	assert.Empty(t, chip.BrandName)
}

// An embedded comma shifts the columns: the format has no escaping, which is
// a documented limitation of the flat file.
func TestDecodeEmbeddedCommaCorruptsColumns(t *testing.T) {
	chip := domain.Chip{ProductID: 7, ProductName: "Salt, Vinegar", Quantity: 10, Price: 100}

	_, err := Decode(Encode(chip))
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestProperty_RoundTripPreservesRecords(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("decoding an encoded chip returns the original", prop.ForAll(
		func(id, quantity, price, deadstock int, name, seller, brand string) bool {
			chip := domain.Chip{
				ProductID:   id,
				ProductName: name,
				Quantity:    quantity,
				SellerName:  seller,
				Price:       price,
				BrandName:   brand,
				Deadstock:   deadstock,
			}

			decoded, err := Decode(Encode(chip))
			return err == nil && decoded == chip
		},
		gen.IntRange(0, 1_000_000),
		gen.IntRange(0, 100_000),
		gen.IntRange(0, 100_000),
		gen.IntRange(0, 10_000),
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
