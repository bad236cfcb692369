package service

import (
	"errors"
	"fmt"
	"strings"

	"chipstock/internal/domain"
	"chipstock/internal/repository"
)

// DefaultTaxRate is the GST rate applied when none is configured.
const DefaultTaxRate = 0.18

// Discount tier thresholds and rates. Three tiers, first-match-wins in
// ascending threshold order, monotonically non-decreasing with price.
const (
	lowTierUnitThreshold  = 200.0  // gross unit price ceiling for the low tier
	lowTierTotalThreshold = 1000.0 // gross total ceiling for the low tier
	midTierPriceCeiling   = 3000.0 // unit price ceiling for the mid tier

	lowTierRate = 0.05
	midTierRate = 0.08
	topTierRate = 0.12
)

// DiscountBasis selects which amount the low discount tier's threshold is
// compared against.
type DiscountBasis string

const (
	// DiscountBasisUnit compares the gross unit price against 200.
	DiscountBasisUnit DiscountBasis = "unit"
	// DiscountBasisTotal compares the gross total against 1000.
	DiscountBasisTotal DiscountBasis = "total"
)

// ParseDiscountBasis maps a configured basis string to a DiscountBasis,
// falling back to DiscountBasisUnit for anything unrecognized.
func ParseDiscountBasis(basis string) DiscountBasis {
	if DiscountBasis(strings.ToLower(basis)) == DiscountBasisTotal {
		return DiscountBasisTotal
	}
	return DiscountBasisUnit
}

var (
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrInvalidQuantity   = errors.New("purchase quantity must be greater than zero")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Bill is the computed breakdown for one purchase. All amounts are
// full-precision float64; rounding to two decimals happens at display time
// only.
type Bill struct {
	Chip           domain.Chip
	Units          int
	UnitPrice      float64
	Subtotal       float64
	TaxRate        float64
	TaxAmount      float64
	GrossUnitPrice float64
	GrossTotal     float64
	DiscountRate   float64
	DiscountAmount float64
	NetAmount      float64
	Savings        float64
}

// BillingService computes bills and applies the resulting stock decrement.
type BillingService interface {
	// PrepareBill resolves the product and computes the bill breakdown
	// without mutating the store.
	PrepareBill(productID, units int) (*Bill, error)
	// CommitBill decrements the billed product's quantity by the billed
	// units and persists the store.
	CommitBill(bill *Bill) error
}

type billingService struct {
	chipRepo repository.ChipRepository
	taxRate  float64
	basis    DiscountBasis
}

// NewBillingService creates a new instance of BillingService. A zero or
// negative tax rate falls back to DefaultTaxRate.
func NewBillingService(chipRepo repository.ChipRepository, taxRate float64, basis DiscountBasis) BillingService {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}
	return &billingService{
		chipRepo: chipRepo,
		taxRate:  taxRate,
		basis:    basis,
	}
}

// PrepareBill validates the requested quantity against the current stock and
// computes all amounts.
func (s *billingService) PrepareBill(productID, units int) (*Bill, error) {
	chip, err := s.chipRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, repository.ErrChipNotFound) {
			return nil, ErrChipNotFound
		}
		return nil, fmt.Errorf("failed to find chip: %w", err)
	}

	if chip.Quantity == 0 {
		return nil, ErrOutOfStock
	}
	if units <= 0 {
		return nil, ErrInvalidQuantity
	}
	if units > chip.Quantity {
		return nil, fmt.Errorf("%w: available quantity %d", ErrInsufficientStock, chip.Quantity)
	}

	unitPrice := float64(chip.Price)
	subtotal := unitPrice * float64(units)
	taxAmount := subtotal * s.taxRate
	grossUnitPrice := unitPrice * (1 + s.taxRate)
	grossTotal := grossUnitPrice * float64(units)

	discountRate := s.discountRate(unitPrice, grossUnitPrice, grossTotal)
	discountAmount := grossTotal * discountRate

	return &Bill{
		Chip:           chip,
		Units:          units,
		UnitPrice:      unitPrice,
		Subtotal:       subtotal,
		TaxRate:        s.taxRate,
		TaxAmount:      taxAmount,
		GrossUnitPrice: grossUnitPrice,
		GrossTotal:     grossTotal,
		DiscountRate:   discountRate,
		DiscountAmount: discountAmount,
		NetAmount:      grossTotal - discountAmount,
		Savings:        discountAmount,
	}, nil
}

// discountRate selects the discount tier. The low tier's threshold is
// compared against the gross unit price or the gross total depending on the
// configured basis; the mid and top tiers are identical under both.
func (s *billingService) discountRate(unitPrice, grossUnitPrice, grossTotal float64) float64 {
	switch s.basis {
	case DiscountBasisTotal:
		if grossTotal <= lowTierTotalThreshold {
			return lowTierRate
		}
	default:
		if grossUnitPrice <= lowTierUnitThreshold {
			return lowTierRate
		}
	}
	if unitPrice < midTierPriceCeiling {
		return midTierRate
	}
	return topTierRate
}

// CommitBill applies the stock decrement for a prepared bill. The decrement
// is kept in memory even when the rewrite of the backing file fails; the
// error is returned so the operator can be warned about the durability gap.
func (s *billingService) CommitBill(bill *Bill) error {
	chip, err := s.chipRepo.FindByID(bill.Chip.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrChipNotFound) {
			return ErrChipNotFound
		}
		return fmt.Errorf("failed to find chip: %w", err)
	}

	chip.Quantity -= bill.Units
	if err := s.chipRepo.Update(chip); err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}
	return nil
}
