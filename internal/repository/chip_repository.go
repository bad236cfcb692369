package repository

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"chipstock/internal/codec"
	"chipstock/internal/domain"

	"go.uber.org/zap"
)

var (
	ErrChipNotFound = errors.New("chip not found")
	ErrDuplicateID  = errors.New("product id already exists")
)

// ChipRepository defines the interface for chip record access. Mutating
// operations rewrite the entire backing file synchronously; a write failure
// is returned to the caller but the in-memory change is kept.
type ChipRepository interface {
	List() []domain.Chip
	FindByID(id int) (domain.Chip, error)
	Create(chip domain.Chip) error
	Update(chip domain.Chip) error
	Delete(id int) error
}

type fileChipRepository struct {
	path   string
	chips  []domain.Chip
	logger *zap.Logger
}

// NewFileChipRepository opens the backing file at path and loads all records
// into memory. A missing file is created empty. An unreadable or uncreatable
// file is an initialization failure and returned as an error.
func NewFileChipRepository(path string, logger *zap.Logger) (ChipRepository, error) {
	repo := &fileChipRepository{path: path, logger: logger}
	if err := repo.load(); err != nil {
		return nil, err
	}
	return repo, nil
}

// load reads the backing file line by line. Empty lines are skipped, and a
// line that fails to decode is logged and skipped without aborting the load,
// so one bad row never loses the rest of the file. Duplicate ids from a
// hand-edited file are kept as-is; lookups return the first match.
func (r *fileChipRepository) load() error {
	file, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		created, createErr := os.Create(r.path)
		if createErr != nil {
			return fmt.Errorf("failed to create data file %s: %w", r.path, createErr)
		}
		return created.Close()
	}
	if err != nil {
		return fmt.Errorf("failed to open data file %s: %w", r.path, err)
	}
	defer file.Close()

	seen := make(map[int]bool)
	scanner := bufio.NewScanner(file)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if line == "" {
			continue
		}

		chip, decodeErr := codec.Decode(line)
		if decodeErr != nil {
			r.logger.Warn("Skipping malformed line",
				zap.Int("line", lineNumber),
				zap.Error(decodeErr),
			)
			continue
		}

		if seen[chip.ProductID] {
			r.logger.Warn("Duplicate product id loaded from data file",
				zap.Int("line", lineNumber),
				zap.Int("product_id", chip.ProductID),
			)
		}
		seen[chip.ProductID] = true

		r.chips = append(r.chips, chip)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read data file %s: %w", r.path, err)
	}

	return nil
}

// save truncates and rewrites the backing file with one encoded line per
// record, in in-memory order.
func (r *fileChipRepository) save() error {
	file, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("failed to open data file for writing: %w", err)
	}

	writer := bufio.NewWriter(file)
	for _, chip := range r.chips {
		if _, err := fmt.Fprintln(writer, codec.Encode(chip)); err != nil {
			file.Close()
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush data file: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close data file: %w", err)
	}

	return nil
}

// List returns a snapshot of all records in store order.
func (r *fileChipRepository) List() []domain.Chip {
	chips := make([]domain.Chip, len(r.chips))
	copy(chips, r.chips)
	return chips
}

// FindByID returns the first record matching id.
func (r *fileChipRepository) FindByID(id int) (domain.Chip, error) {
	for _, chip := range r.chips {
		if chip.ProductID == id {
			return chip, nil
		}
	}
	return domain.Chip{}, ErrChipNotFound
}

// Create appends a new record and persists the store. A record whose id is
// already present is rejected with ErrDuplicateID before any change is made.
func (r *fileChipRepository) Create(chip domain.Chip) error {
	if _, err := r.FindByID(chip.ProductID); err == nil {
		return fmt.Errorf("%w: %d", ErrDuplicateID, chip.ProductID)
	}

	r.chips = append(r.chips, chip)
	return r.save()
}

// Update replaces the record matching chip.ProductID in place and persists
// the store.
func (r *fileChipRepository) Update(chip domain.Chip) error {
	for i := range r.chips {
		if r.chips[i].ProductID == chip.ProductID {
			r.chips[i] = chip
			return r.save()
		}
	}
	return ErrChipNotFound
}

// Delete removes the first record matching id and persists the store.
func (r *fileChipRepository) Delete(id int) error {
	for i := range r.chips {
		if r.chips[i].ProductID == id {
			r.chips = append(r.chips[:i], r.chips[i+1:]...)
			return r.save()
		}
	}
	return ErrChipNotFound
}
