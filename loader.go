package ledger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const (
	transactionsFilename = "transactions.json"
	categoriesFilename   = "categories.json"
)

// This file loads and saves the two JSON snapshot files under the data
// directory. Load failures never abort startup: a missing or corrupt file
// degrades to an empty collection with a logged warning.

// LoadLedger reads the transactions file from the data directory.
func LoadLedger(dir, homeCurrency string) *Ledger {
	path := filepath.Join(dir, transactionsFilename)
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: cannot open %q, starting with an empty ledger: %v", path, err)
		}
		return NewLedger()
	}
	defer f.Close()

	l, err := DecodeTransactions(f, homeCurrency)
	if err != nil {
		log.Printf("warning: cannot read %q, starting with an empty ledger: %v", path, err)
		return NewLedger()
	}
	return l
}

// LoadCategories reads the categories file from the data directory. A first
// run (no usable file, nothing stored yet) is seeded with default categories.
func LoadCategories(dir string) *Categories {
	path := filepath.Join(dir, categoriesFilename)
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: cannot open %q, using default categories: %v", path, err)
		}
		return DefaultCategories()
	}
	defer f.Close()

	c, err := DecodeCategories(f)
	if err != nil {
		log.Printf("warning: cannot read %q, using default categories: %v", path, err)
		return DefaultCategories()
	}
	if c.Len() == 0 {
		return DefaultCategories()
	}
	return c
}

// SaveLedger writes the transactions file, creating the data directory if needed.
func SaveLedger(dir string, l *Ledger) error {
	return save(dir, transactionsFilename, func(f *os.File) error {
		return EncodeTransactions(f, l)
	})
}

// SaveCategories writes the categories file, creating the data directory if needed.
func SaveCategories(dir string, c *Categories) error {
	return save(dir, categoriesFilename, func(f *os.File) error {
		return EncodeCategories(f, c)
	})
}

func save(dir, name string, encode func(*os.File) error) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create data directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}
