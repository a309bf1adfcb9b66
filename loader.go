package wealth

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultLedgerFile is the journal file name used when none is given.
const DefaultLedgerFile = "wealth.jsonl"

// LoadLedger opens, decodes, and initializes a ledger from a journal file.
// A missing file is not an error: it returns an empty ledger, so the first
// recorded event creates the journal.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewLedger(), nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return ledger, nil
}

// SaveLedger writes the ledger back to its journal file, creating the
// parent directory if needed.
func SaveLedger(path string, ledger *Ledger) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", path, err)
	}
	defer file.Close()

	return EncodeLedger(file, ledger)
}
