package cli

import (
	"errors"
	"fmt"

	"chipstock/internal/domain"
	"chipstock/internal/service"

	"go.uber.org/zap"
)

const notFoundMessage = "## SORRY! NO MATCHING DETAILS AVAILABLE ##"

// showAll renders the full inventory table.
func (m *Menu) showAll() {
	chips := m.inventory.ListChips()
	if len(chips) == 0 {
		m.printDivider()
		fmt.Fprintln(m.out, "## Inventory is empty. Use the ADD option to register products.")
		m.printDivider()
		return
	}

	m.sectionTitle("CHIP INVENTORY SNAPSHOT")
	m.printTableHeader()
	for _, chip := range chips {
		m.printTableRow(chip)
	}
	m.printDivider()
	fmt.Fprintf(m.out, "\n TOTAL RECORDS : %d\n\n", len(chips))
}

// addChip collects a new record from the operator. The product id prompt is
// the uniqueness gate: it retries until an id not already in the store is
// supplied.
func (m *Menu) addChip() error {
	m.sectionTitle("ADD NEW PRODUCT")

	var chip domain.Chip
	for {
		id, err := m.promptInt("Enter Product ID: ")
		if err != nil {
			return err
		}
		if !m.inventory.HasChip(id) {
			chip.ProductID = id
			break
		}
		fmt.Fprintln(m.out, "Product ID already exists. Please enter a unique ID.")
	}

	var err error
	if chip.ProductName, err = m.promptString("Enter Product Name: "); err != nil {
		return err
	}
	if chip.Quantity, err = m.promptInt("Enter Quantity: "); err != nil {
		return err
	}
	if chip.SellerName, err = m.promptString("Enter Seller Name: "); err != nil {
		return err
	}
	if chip.Price, err = m.promptInt("Enter Price (per unit): "); err != nil {
		return err
	}
	if chip.BrandName, err = m.promptString("Enter Brand Name: "); err != nil {
		return err
	}
	if chip.Deadstock, err = m.promptInt("Enter Deadstock (0 if none): "); err != nil {
		return err
	}

	if err := m.inventory.AddChip(chip); err != nil {
		m.logger.Error("Failed to persist new record", zap.Int("product_id", chip.ProductID), zap.Error(err))
		fmt.Fprintln(m.out, "WARNING: record kept in memory but not saved to disk.")
		return nil
	}

	fmt.Fprintln(m.out, "\n## RECORD ADDED SUCCESSFULLY!")
	return nil
}

// searchChip looks up a record by id for display. Read-only.
func (m *Menu) searchChip() error {
	m.sectionTitle("SEARCH PRODUCT FORM")
	if len(m.inventory.ListChips()) == 0 {
		fmt.Fprintln(m.out, "Inventory is empty. Add products before searching.")
		return nil
	}

	id, err := m.promptInt("Enter Product ID to search: ")
	if err != nil {
		return err
	}

	chip, findErr := m.inventory.FindChip(id)
	if errors.Is(findErr, service.ErrChipNotFound) {
		fmt.Fprintln(m.out, notFoundMessage)
		return nil
	}

	m.printTableHeader()
	m.printTableRow(chip)
	m.printDivider()
	return nil
}

// editChip re-prompts every field with the current value as default. A blank
// response keeps the field; declining the confirmation cancels with no
// changes. The product id itself is immutable.
func (m *Menu) editChip() error {
	m.sectionTitle("EDIT PRODUCT DETAILS")
	if len(m.inventory.ListChips()) == 0 {
		fmt.Fprintln(m.out, "Inventory is empty. Add products before editing.")
		return nil
	}

	id, err := m.promptInt("Enter Product ID to edit: ")
	if err != nil {
		return err
	}

	chip, findErr := m.inventory.FindChip(id)
	if errors.Is(findErr, service.ErrChipNotFound) {
		fmt.Fprintln(m.out, notFoundMessage)
		return nil
	}

	m.printTableHeader()
	m.printTableRow(chip)
	m.printDivider()

	proceed, err := m.confirm("Proceed to update this product? (y/n): ")
	if err != nil {
		return err
	}
	if !proceed {
		fmt.Fprintln(m.out, "Update cancelled.")
		return nil
	}

	fmt.Fprintln(m.out, "Leave a field blank to keep the current value.")
	if chip.ProductName, err = m.promptOptionalString(
		fmt.Sprintf("Product Name [%s]: ", chip.ProductName), chip.ProductName); err != nil {
		return err
	}
	if chip.Quantity, err = m.promptOptionalInt(
		fmt.Sprintf("Quantity [%d]: ", chip.Quantity), chip.Quantity); err != nil {
		return err
	}
	if chip.SellerName, err = m.promptOptionalString(
		fmt.Sprintf("Seller Name [%s]: ", chip.SellerName), chip.SellerName); err != nil {
		return err
	}
	if chip.Price, err = m.promptOptionalInt(
		fmt.Sprintf("Price [%d]: ", chip.Price), chip.Price); err != nil {
		return err
	}
	if chip.BrandName, err = m.promptOptionalString(
		fmt.Sprintf("Brand Name [%s]: ", chip.BrandName), chip.BrandName); err != nil {
		return err
	}
	if chip.Deadstock, err = m.promptOptionalInt(
		fmt.Sprintf("Deadstock [%d]: ", chip.Deadstock), chip.Deadstock); err != nil {
		return err
	}

	if err := m.inventory.UpdateChip(chip); err != nil {
		m.logger.Error("Failed to persist record update", zap.Int("product_id", chip.ProductID), zap.Error(err))
		fmt.Fprintln(m.out, "WARNING: changes kept in memory but not saved to disk.")
		return nil
	}

	fmt.Fprintln(m.out, "\n## RECORD UPDATED ##")
	return nil
}

// deleteChip removes exactly the record matching the given id after an
// explicit confirmation.
func (m *Menu) deleteChip() error {
	m.sectionTitle("DELETE PRODUCT DETAILS")
	if len(m.inventory.ListChips()) == 0 {
		fmt.Fprintln(m.out, "Inventory is empty. Add products before deleting.")
		return nil
	}

	id, err := m.promptInt("Enter Product ID to delete: ")
	if err != nil {
		return err
	}

	chip, findErr := m.inventory.FindChip(id)
	if errors.Is(findErr, service.ErrChipNotFound) {
		fmt.Fprintln(m.out, notFoundMessage)
		return nil
	}

	m.printTableHeader()
	m.printTableRow(chip)
	m.printDivider()

	proceed, err := m.confirm("Are you sure you want to delete this product? (y/n): ")
	if err != nil {
		return err
	}
	if !proceed {
		fmt.Fprintln(m.out, "Deletion cancelled.")
		return nil
	}

	if err := m.inventory.RemoveChip(id); err != nil {
		m.logger.Error("Failed to persist record deletion", zap.Int("product_id", id), zap.Error(err))
		fmt.Fprintln(m.out, "WARNING: deletion kept in memory but not saved to disk.")
		return nil
	}

	fmt.Fprintln(m.out, "\n## RECORD DELETED ##")
	return nil
}

// generateBill runs the billing flow: resolve the product, validate the
// requested quantity against stock, show the bill slip, then decrement and
// persist.
func (m *Menu) generateBill() error {
	m.sectionTitle("BILL SLIP")
	if len(m.inventory.ListChips()) == 0 {
		fmt.Fprintln(m.out, "Inventory is empty. Add products before billing.")
		return nil
	}

	id, err := m.promptInt("Enter Product ID to bill: ")
	if err != nil {
		return err
	}

	chip, findErr := m.inventory.FindChip(id)
	if errors.Is(findErr, service.ErrChipNotFound) {
		fmt.Fprintln(m.out, notFoundMessage)
		return nil
	}
	if chip.Quantity == 0 {
		fmt.Fprintln(m.out, "Product is out of stock.")
		return nil
	}

	var bill *service.Bill
	for bill == nil {
		units, err := m.promptInt("Enter quantity to purchase: ")
		if err != nil {
			return err
		}

		prepared, prepErr := m.billing.PrepareBill(id, units)
		switch {
		case errors.Is(prepErr, service.ErrInvalidQuantity):
			fmt.Fprintln(m.out, "Quantity must be greater than zero.")
		case errors.Is(prepErr, service.ErrInsufficientStock):
			fmt.Fprintf(m.out, "Insufficient stock. Available quantity: %d.\n", chip.Quantity)
		case prepErr != nil:
			m.logger.Error("Failed to prepare bill", zap.Int("product_id", id), zap.Error(prepErr))
			return nil
		default:
			bill = prepared
		}
	}

	m.printBill(bill)

	if err := m.billing.CommitBill(bill); err != nil {
		m.logger.Error("Failed to persist stock decrement", zap.Int("product_id", id), zap.Error(err))
		fmt.Fprintln(m.out, "WARNING: inventory change kept in memory but not saved to disk.")
		return nil
	}

	fmt.Fprintln(m.out, "Inventory updated.")
	return nil
}

// contactInfo prints the static support screen.
func (m *Menu) contactInfo() {
	m.sectionTitle("CONTACT US")
	border := m.starBorder(60)
	fmt.Fprintln(m.out, border)
	fmt.Fprintf(m.out, "%15sSupport Desk : Silicon Supply Co.\n", " ")
	fmt.Fprintf(m.out, "%15sEmail        : support@siliconsupply.com\n", " ")
	fmt.Fprintf(m.out, "%15sPhone        : +1-800-555-CHIP\n", " ")
	fmt.Fprintf(m.out, "%15sHours        : Mon-Sat 9:00-18:00\n", " ")
	fmt.Fprintf(m.out, "%s\n\n", border)
}
