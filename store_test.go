package main

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const testSeedJSON = `{
  "categories": [
    {"name": "Fruits", "words": ["Apple", "Banana", "Orange", "Grape", "Mango"]},
    {"name": "Animals", "words": ["Cat", "Dog", "Horse", "Cow"]}
  ]
}`

func newTestStore(t *testing.T) *sqliteStore {
	t.Helper()
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "categories.json")
	if err := os.WriteFile(seedPath, []byte(testSeedJSON), 0644); err != nil {
		t.Fatalf("Failed to write seed file: %v", err)
	}
	store, err := openCategoryStore(filepath.Join(dir, "words.db"), seedPath)
	if err != nil {
		t.Fatalf("Failed to open category store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCategoryStore_SeedsAndLists(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	infos, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("Got %d categories, want 2", len(infos))
	}
	if infos[0].Name != "Fruits" || infos[1].Name != "Animals" {
		t.Errorf("Unexpected category order: %+v", infos)
	}
}

func TestWordsForCategory_PreservesInsertionOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	infos, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	words, err := store.WordsForCategory(ctx, infos[0].ID)
	if err != nil {
		t.Fatalf("WordsForCategory failed: %v", err)
	}
	want := []string{"Apple", "Banana", "Orange", "Grape", "Mango"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("Words = %v, want %v in seed order", words, want)
	}
}

func TestOpenCategoryStore_SeedIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "categories.json")
	dbPath := filepath.Join(dir, "words.db")
	if err := os.WriteFile(seedPath, []byte(testSeedJSON), 0644); err != nil {
		t.Fatalf("Failed to write seed file: %v", err)
	}

	first, err := openCategoryStore(dbPath, seedPath)
	if err != nil {
		t.Fatalf("First open failed: %v", err)
	}
	first.Close()

	second, err := openCategoryStore(dbPath, seedPath)
	if err != nil {
		t.Fatalf("Second open failed: %v", err)
	}
	defer second.Close()

	infos, err := second.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(infos) != 2 {
		t.Errorf("Reopen duplicated seed data: got %d categories, want 2", len(infos))
	}
}

func TestOpenCategoryStore_MissingSeedFile(t *testing.T) {
	dir := t.TempDir()
	store, err := openCategoryStore(filepath.Join(dir, "words.db"), filepath.Join(dir, "absent.json"))
	if err != nil {
		t.Fatalf("Open with missing seed file failed: %v", err)
	}
	defer store.Close()

	infos, err := store.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("Expected empty store, got %d categories", len(infos))
	}
}

func TestLoadCategoryPool(t *testing.T) {
	app := &App{Store: newTestStore(t)}
	pool := app.loadCategoryPool(context.Background())
	if len(pool) != 2 {
		t.Fatalf("Pool size = %d, want 2", len(pool))
	}
	if pool[0].Name != "Fruits" || len(pool[0].Words) != 5 {
		t.Errorf("Unexpected first pool entry: %+v", pool[0])
	}
}

func TestLoadCategoryPool_NilStore(t *testing.T) {
	app := &App{}
	if pool := app.loadCategoryPool(context.Background()); pool != nil {
		t.Errorf("Expected nil pool without a store, got %v", pool)
	}
}
