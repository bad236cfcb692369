// Package codec converts between chip records and their flat-file line
// representation: seven comma-separated fields in fixed order with no quoting
// or escaping. Text fields containing a comma or newline will corrupt the row
// structure on the next save; callers are expected to live with that.
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"chipstock/internal/domain"
)

// ErrMalformedLine indicates a line that cannot be decoded into a chip record.
var ErrMalformedLine = errors.New("malformed record line")

// minFields is the number of fields a line must carry to decode at all.
// The seventh field (deadstock) is optional for backward compatibility with
// files written before deadstock tracking existed.
const minFields = 6

// Decode parses a single flat-file line into a chip record.
// Field order is: id, name, quantity, seller, price, brand, deadstock.
// A missing or unparseable deadstock field defaults to zero and is not an
// error.
func Decode(line string) (domain.Chip, error) {
	fields := strings.Split(line, ",")
	if len(fields) < minFields {
		return domain.Chip{}, fmt.Errorf("%w: want at least %d fields, got %d", ErrMalformedLine, minFields, len(fields))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.Chip{}, fmt.Errorf("%w: invalid product id %q", ErrMalformedLine, fields[0])
	}

	quantity, err := strconv.Atoi(fields[2])
	if err != nil {
		return domain.Chip{}, fmt.Errorf("%w: invalid quantity %q", ErrMalformedLine, fields[2])
	}

	price, err := strconv.Atoi(fields[4])
	if err != nil {
		return domain.Chip{}, fmt.Errorf("%w: invalid price %q", ErrMalformedLine, fields[4])
	}

	chip := domain.Chip{
		ProductID:   id,
		ProductName: fields[1],
		Quantity:    quantity,
		SellerName:  fields[3],
		Price:       price,
		BrandName:   fields[5],
	}

	if len(fields) > minFields {
		if deadstock, err := strconv.Atoi(fields[minFields]); err == nil {
			chip.Deadstock = deadstock
		}
	}

	return chip, nil
}

// Encode renders a chip record as a single flat-file line. Decode(Encode(c))
// returns c for any record whose text fields contain no comma or newline.
func Encode(chip domain.Chip) string {
	return strings.Join([]string{
		strconv.Itoa(chip.ProductID),
		chip.ProductName,
		strconv.Itoa(chip.Quantity),
		chip.SellerName,
		strconv.Itoa(chip.Price),
		chip.BrandName,
		strconv.Itoa(chip.Deadstock),
	}, ",")
}
