// Package cli implements the interactive terminal menu that drives the
// inventory and billing operations. It plays the role the HTTP transport
// layer would in a networked service: user-facing handlers over the service
// layer, with operator messages on stdout and diagnostics on the logger.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"chipstock/internal/service"

	"go.uber.org/zap"
)

// errInputClosed signals end of input on the operator stream. It is a request
// to exit the menu loop gracefully, not an error.
var errInputClosed = errors.New("input stream closed")

// Menu drives one interactive inventory session.
type Menu struct {
	inventory service.InventoryService
	billing   service.BillingService
	logger    *zap.Logger
	scanner   *bufio.Scanner
	out       io.Writer
}

// NewMenu creates a new Menu reading operator input from in and writing all
// operator-facing output to out.
func NewMenu(inventory service.InventoryService, billing service.BillingService, logger *zap.Logger, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		inventory: inventory,
		billing:   billing,
		logger:    logger,
		scanner:   bufio.NewScanner(in),
		out:       out,
	}
}

// Run loops over the numbered menu until the operator chooses Exit or the
// input stream ends. It returns a non-nil error only for genuine read
// failures on the operator stream.
func (m *Menu) Run() error {
	for {
		m.printMenu()

		line, err := m.readLine()
		if errors.Is(err, errInputClosed) {
			fmt.Fprintln(m.out, "\nInput terminated. Exiting...")
			return nil
		}
		if err != nil {
			return err
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(m.out, "Invalid option. Please enter a number between 0 and 7.")
			continue
		}

		var handlerErr error
		switch choice {
		case 1:
			m.showAll()
		case 2:
			handlerErr = m.addChip()
		case 3:
			handlerErr = m.searchChip()
		case 4:
			handlerErr = m.editChip()
		case 5:
			handlerErr = m.deleteChip()
		case 6:
			handlerErr = m.generateBill()
		case 7:
			m.contactInfo()
		case 0:
			fmt.Fprintln(m.out, "\nGOODBYE!!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option. Please choose between 0 and 7.")
		}

		if errors.Is(handlerErr, errInputClosed) {
			fmt.Fprintln(m.out, "\nInput terminated. Exiting...")
			return nil
		}
		if handlerErr != nil {
			return handlerErr
		}
	}
}

func (m *Menu) printMenu() {
	border := strings.Repeat("=", 58)
	fmt.Fprintf(m.out, "\n%s\n", border)
	fmt.Fprintf(m.out, "%10sCHIP INVENTORY MANAGEMENT MENU\n", " ")
	fmt.Fprintln(m.out, border)
	fmt.Fprintln(m.out, "1. SHOW PRODUCT DETAILS")
	fmt.Fprintln(m.out, "2. ADD NEW PRODUCT")
	fmt.Fprintln(m.out, "3. SEARCH PRODUCT")
	fmt.Fprintln(m.out, "4. EDIT PRODUCT DETAILS")
	fmt.Fprintln(m.out, "5. DELETE PRODUCT")
	fmt.Fprintln(m.out, "6. GENERATE BILL")
	fmt.Fprintln(m.out, "7. CONTACT SUPPORT")
	fmt.Fprintln(m.out, "0. EXIT")
	fmt.Fprintln(m.out, border)
	fmt.Fprint(m.out, "Enter your choice: ")
}
