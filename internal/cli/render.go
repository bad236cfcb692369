package cli

import (
	"fmt"
	"strings"

	"chipstock/internal/domain"
	"chipstock/internal/service"
)

// Column widths for the inventory table.
const (
	idWidth        = 12
	nameWidth      = 24
	quantityWidth  = 10
	sellerWidth    = 26
	priceWidth     = 10
	brandWidth     = 18
	deadstockWidth = 10
)

const tableWidth = idWidth + nameWidth + quantityWidth + sellerWidth + priceWidth + brandWidth + deadstockWidth

func (m *Menu) sectionTitle(title string) {
	border := strings.Repeat("+-", 24)
	fmt.Fprintf(m.out, "\n%s %s %s\n\n", border, title, border)
}

func (m *Menu) printDivider() {
	fmt.Fprintln(m.out, strings.Repeat("-", tableWidth))
}

func (m *Menu) starBorder(width int) string {
	return strings.Repeat("*", width)
}

func (m *Menu) printTableHeader() {
	m.printDivider()
	fmt.Fprintf(m.out, "%-*s%-*s%-*s%-*s%-*s%-*s%-*s\n",
		idWidth, "Product ID",
		nameWidth, "Product Name",
		quantityWidth, "Quantity",
		sellerWidth, "Seller Name",
		priceWidth, "Price",
		brandWidth, "Brand Name",
		deadstockWidth, "Deadstock",
	)
	m.printDivider()
}

func (m *Menu) printTableRow(chip domain.Chip) {
	fmt.Fprintf(m.out, "%-*d%-*s%-*d%-*s%-*d%-*s%-*d\n",
		idWidth, chip.ProductID,
		nameWidth, chip.ProductName,
		quantityWidth, chip.Quantity,
		sellerWidth, chip.SellerName,
		priceWidth, chip.Price,
		brandWidth, chip.BrandName,
		deadstockWidth, chip.Deadstock,
	)
}

// printBill renders the bill slip. All amounts are shown rounded to two
// decimal places; the underlying arithmetic stays full precision.
func (m *Menu) printBill(bill *service.Bill) {
	border := strings.Repeat("--", 30)
	starBorder := m.starBorder(70)

	fmt.Fprintf(m.out, "\n%s BILL DETAILS %s\n\n", border, border)
	fmt.Fprintln(m.out, starBorder)
	fmt.Fprintf(m.out, "PRODUCT ID   : %-18d PRODUCT NAME : %s\n", bill.Chip.ProductID, bill.Chip.ProductName)
	fmt.Fprintf(m.out, "SELLER NAME  : %s\n", bill.Chip.SellerName)
	fmt.Fprintf(m.out, "BRAND NAME   : %s\n", bill.Chip.BrandName)
	fmt.Fprintln(m.out, starBorder)

	fmt.Fprintf(m.out, "UNITS        : %d\n", bill.Units)
	fmt.Fprintf(m.out, "UNIT PRICE   : Rs. %.2f\n", bill.UnitPrice)
	fmt.Fprintf(m.out, "SUBTOTAL     : Rs. %.2f\n", bill.Subtotal)
	fmt.Fprintf(m.out, "GST @ %.0f%%    : Rs. %.2f\n", bill.TaxRate*100, bill.TaxAmount)
	fmt.Fprintf(m.out, "MRP (incl. GST): Rs. %.2f\n", bill.GrossTotal)
	fmt.Fprintf(m.out, "DISCOUNT @%.0f%% : Rs. -%.2f\n", bill.DiscountRate*100, bill.DiscountAmount)
	fmt.Fprintln(m.out, strings.Repeat("-=", 36))
	fmt.Fprintf(m.out, "NET AMOUNT   : Rs. %.2f\n", bill.NetAmount)
	fmt.Fprintf(m.out, "YOU SAVED    : Rs. %.2f\n", bill.Savings)
	fmt.Fprintf(m.out, "\n%s\n", starBorder)
	fmt.Fprintf(m.out, "%25sTHANK YOU FOR YOUR VISIT!\n", " ")
	fmt.Fprintf(m.out, "%s\n\n", starBorder)
}
