package ledger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmelo/ledger/date"
	"github.com/shopspring/decimal"
)

func TestTransactions_EncodeDecode(t *testing.T) {
	l := NewLedger()
	tx, err := NewTransaction("t1", Expense, date.MustParse("2025-03-05"), decimal.RequireFromString("42.50"), "USD", "cat-1", "dinner")
	if err != nil {
		t.Fatalf("NewTransaction() error = %v", err)
	}
	l.Append(tx.WithHome(M(decimal.RequireFromString("212.50"), "BRL")))

	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, l); err != nil {
		t.Fatalf("EncodeTransactions() error = %v", err)
	}
	// amounts are persisted as JSON numbers, not quoted strings
	if strings.Contains(buf.String(), `"42.5"`) {
		t.Errorf("amounts should not be quoted: %s", buf.String())
	}

	got, err := DecodeTransactions(&buf, "BRL")
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("decoded %d transactions, want 1", got.Len())
	}
	dec, _ := got.Get("t1")
	if dec.Kind() != Expense || dec.When() != date.MustParse("2025-03-05") {
		t.Errorf("decoded kind/date = %v/%v", dec.Kind(), dec.When())
	}
	if !dec.Original().Amount().Equal(decimal.RequireFromString("42.50")) || dec.Original().Currency() != "USD" {
		t.Errorf("decoded original = %s %s", dec.Original().Amount(), dec.Original().Currency())
	}
	if !dec.HasHome() || !dec.Home().Amount().Equal(decimal.RequireFromString("212.50")) {
		t.Errorf("decoded home = %s (set=%v)", dec.Home().Amount(), dec.HasHome())
	}
	if dec.CategoryID() != "cat-1" || dec.Memo() != "dinner" {
		t.Errorf("decoded category/memo = %q/%q", dec.CategoryID(), dec.Memo())
	}
}

func TestDecodeTransactions_MissingHomeAmount(t *testing.T) {
	in := `[{"id":"x","kind":"income","date":"2025-01-01","amount":100,"currency":"USD"}]`
	l, err := DecodeTransactions(strings.NewReader(in), "BRL")
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	tx, _ := l.Get("x")
	if tx.HasHome() {
		t.Error("a row without homeAmount should decode with the home amount unset")
	}
	// ... and still count in the balance through the fallback.
	if got := l.Balance().Amount(); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Balance() = %s, want 100", got)
	}
}

func TestDecodeTransactions_EmptyAndBroken(t *testing.T) {
	l, err := DecodeTransactions(strings.NewReader(""), "BRL")
	if err != nil || l.Len() != 0 {
		t.Errorf("empty file: ledger = %v, err = %v; want empty, nil", l, err)
	}

	if _, err := DecodeTransactions(strings.NewReader("{not json"), "BRL"); err == nil {
		t.Error("broken file should fail to decode")
	}
	if _, err := DecodeTransactions(strings.NewReader(`[{"id":"x","kind":"loan","date":"2025-01-01","amount":1,"currency":"BRL"}]`), "BRL"); err == nil {
		t.Error("unknown kind should fail to decode")
	}
}

func TestCategories_EncodeDecode(t *testing.T) {
	c := NewCategories()
	food, _ := c.Add("Food", "#FF9800")

	var buf bytes.Buffer
	if err := EncodeCategories(&buf, c); err != nil {
		t.Fatalf("EncodeCategories() error = %v", err)
	}
	got, err := DecodeCategories(&buf)
	if err != nil {
		t.Fatalf("DecodeCategories() error = %v", err)
	}
	dec, ok := got.Find(food.ID)
	if !ok || dec.Name != "Food" || dec.Color != "#FF9800" {
		t.Errorf("decoded category = %+v, ok = %v", dec, ok)
	}
}

func TestLoad_DegradesToEmptyState(t *testing.T) {
	dir := t.TempDir()

	// Nothing on disk: empty ledger, seeded categories.
	if l := LoadLedger(dir, "BRL"); l.Len() != 0 {
		t.Errorf("LoadLedger() on a fresh directory = %d transactions, want 0", l.Len())
	}
	if c := LoadCategories(dir); c.Len() == 0 {
		t.Error("LoadCategories() on a fresh directory should seed defaults")
	}

	// Corrupt files: same degradation, no error.
	writeFile(t, filepath.Join(dir, transactionsFilename), "garbage")
	writeFile(t, filepath.Join(dir, categoriesFilename), "garbage")
	if l := LoadLedger(dir, "BRL"); l.Len() != 0 {
		t.Error("LoadLedger() on a corrupt file should return an empty ledger")
	}
	if c := LoadCategories(dir); c.Len() == 0 {
		t.Error("LoadCategories() on a corrupt file should seed defaults")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	l := NewLedger()
	tx, _ := NewTransaction("t1", Income, date.MustParse("2025-02-02"), decimal.NewFromInt(10), "BRL", "", "")
	l.Append(tx.WithHome(M(decimal.NewFromInt(10), "BRL")))
	cats := DefaultCategories()

	if err := SaveLedger(dir, l); err != nil {
		t.Fatalf("SaveLedger() error = %v", err)
	}
	if err := SaveCategories(dir, cats); err != nil {
		t.Fatalf("SaveCategories() error = %v", err)
	}

	if got := LoadLedger(dir, "BRL"); got.Len() != 1 {
		t.Errorf("LoadLedger() = %d transactions, want 1", got.Len())
	}
	if got := LoadCategories(dir); got.Len() != cats.Len() {
		t.Errorf("LoadCategories() = %d categories, want %d", got.Len(), cats.Len())
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
