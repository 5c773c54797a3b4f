package ledger

import (
	"errors"
	"testing"
)

func TestCategories_Lifecycle(t *testing.T) {
	c := NewCategories()

	food, err := c.Add("Food", "")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if food.Color != defaultColor {
		t.Errorf("Add() without color = %q, want %q", food.Color, defaultColor)
	}
	if _, err := c.Add("  ", ""); err == nil {
		t.Error("Add() should reject a blank name")
	}

	if err := c.Rename(food.ID, "Groceries"); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if got, _ := c.Find(food.ID); got.Name != "Groceries" {
		t.Errorf("Find() after rename = %q", got.Name)
	}
	if err := c.Rename("missing", "x"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("Rename(missing) error = %v, want ErrCategoryNotFound", err)
	}

	if !c.Remove(food.ID) {
		t.Fatal("Remove() should find the category")
	}
	if _, err := c.Require(food.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("Require() after removal error = %v, want ErrCategoryNotFound", err)
	}
	if _, ok := c.Find(""); ok {
		t.Error("Find(\"\") should always miss")
	}
}

func TestCategories_EqualByID(t *testing.T) {
	a := Category{ID: "1", Name: "Food", Color: "#111111"}
	b := Category{ID: "1", Name: "Renamed", Color: "#222222"}
	if !a.Equal(b) {
		t.Error("categories with the same id should be equal")
	}
}

func TestDefaultCategories(t *testing.T) {
	c := DefaultCategories()
	for _, name := range []string{"Salary", "Food", "Transport"} {
		if _, ok := c.FindByName(name); !ok {
			t.Errorf("default categories missing %q", name)
		}
	}
}
