package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

type (
	CatalogEntry struct {
		ID      string    `json:"id"`      // dataset UUID
		Kind    string    `json:"kind"`    // dataset kind
		Count   int       `json:"count"`   // number of values
		Created time.Time `json:"created"` // dataset creation time
		Path    string    `json:"path"`    // file the dataset was read from
	}
	Catalog struct {
		entries []CatalogEntry
		sorted  bool
	}
)

func (c Catalog) Iterate(yield func(CatalogEntry) bool) {
	for _, entry := range c.entries {
		if !yield(entry) {
			return
		}
	}
}

func (c *Catalog) Add(e CatalogEntry) {
	c.sorted = false
	c.entries = append(c.entries, e)
}

func (c Catalog) Get(index int) CatalogEntry {
	if index < 0 || index >= len(c.entries) {
		return CatalogEntry{}
	}
	return c.entries[index]
}

// Sort orders entries by creation time, oldest first.
func (c *Catalog) Sort() {
	sort.Stable(c)
	c.sorted = true
}

func (c Catalog) Len() int {
	return len(c.entries)
}

func (c Catalog) Swap(i, j int) {
	c.entries[i], c.entries[j] = c.entries[j], c.entries[i]
}

func (c Catalog) Less(i, j int) bool {
	return c.entries[i].Created.Before(c.entries[j].Created)
}

// Kinds counts the entries per dataset kind.
func (c Catalog) Kinds() map[string]int {
	kinds := make(map[string]int)
	for _, e := range c.entries {
		kinds[e.Kind]++
	}
	return kinds
}

// TotalValues returns the number of values across all entries.
func (c Catalog) TotalValues() int {
	total := 0
	for _, e := range c.entries {
		total += e.Count
	}
	return total
}

// ScanCatalog walks dir and loads every dataset file in it. Files that fail
// to load, and content-addressed files whose values no longer hash to their
// name, are reported in the returned error, joined. The remaining datasets
// are still returned in the catalog, sorted oldest first.
func ScanCatalog(dir string) (Catalog, error) {
	var c Catalog
	info, err := os.Stat(dir)
	if err != nil {
		return c, err
	}
	if !info.IsDir() {
		return c, ErrExpectedDirectory
	}

	var errs []error
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, err := datasetCompression(path); err != nil {
			return nil
		}
		ds, err := LoadDataset(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if err := verifyName(path, ds); err != nil {
			errs = append(errs, err)
			return nil
		}
		c.Add(CatalogEntry{
			ID:      ds.ID,
			Kind:    ds.Kind,
			Count:   ds.Len(),
			Created: ds.Created,
			Path:    path,
		})
		return nil
	})
	if err != nil {
		return c, fmt.Errorf("scanning %s: %w", dir, err)
	}
	c.Sort()
	return c, errors.Join(errs...)
}

// verifyName checks a content-addressed file against its values. Files
// saved under any other name pass.
func verifyName(path string, ds Dataset) error {
	want, err := HashFromFileName(filepath.Base(path))
	if err != nil {
		return nil
	}
	if got := ValuesHash(ds.Values); got != want {
		return fmt.Errorf("%s: %w (got %s)", path, ErrHashMismatch, got)
	}
	return nil
}
