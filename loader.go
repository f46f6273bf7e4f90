package finbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadLedger reads the book file at path and decodes it. A missing or empty
// file is "no prior state": it yields a fresh empty ledger, not an error.
// The ledger name is derived from the file name.
func LoadLedger(path string) (*Ledger, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		l := NewLedger()
		l.name = name
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open book file %q: %w", path, err)
	}

	ledger, err := DecodeLedger(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("could not decode book file %q: %w", path, err)
	}
	ledger.name = name
	return ledger, nil
}

// SaveLedger writes the whole ledger to path. The write is atomic: the
// encoded book goes to a temporary file first, then replaces the previous
// file by rename, so an interrupted write never corrupts the prior state.
func SaveLedger(path string, ledger *Ledger) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for book %q: %w", path, err)
		}
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("error opening book file %q for writing: %w", tmp, err)
	}
	if err := EncodeLedger(f, ledger); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
