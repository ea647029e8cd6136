package util

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Dataset kinds written by the generator.
const (
	KindRandom     = "random"
	KindIncreasing = "increasing"
	KindShuffled   = "shuffled"
	KindSorted     = "sorted"
)

// Dataset is a persisted integer sequence.
type Dataset struct {
	ID      string    `json:"id"`      // random UUID assigned at creation
	Kind    string    `json:"kind"`    // how the values were produced
	Created time.Time `json:"created"` // creation time, UTC
	Values  []int     `json:"values"`
}

// NewDataset wraps values in a Dataset with a fresh ID. The slice is not
// copied.
func NewDataset(kind string, values []int) Dataset {
	return Dataset{
		ID:      uuid.New().String(),
		Kind:    kind,
		Created: time.Now().UTC(),
		Values:  values,
	}
}

// Len returns the number of values.
func (d Dataset) Len() int {
	return len(d.Values)
}

func (d Dataset) MarshalJSON() ([]byte, error) {
	type alias Dataset
	return json.Marshal(struct {
		alias
		Count int `json:"count"`
	}{
		alias: alias(d),
		Count: len(d.Values),
	})
}

// Save writes the dataset to path. A .json.gz suffix selects gzip
// compression, .json plain JSON.
func (d Dataset) Save(path string) error {
	compressed, err := datasetCompression(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeJSON(f, d, compressed); err != nil {
		f.Close()
		return fmt.Errorf("writing dataset %s: %w", path, err)
	}
	return f.Close()
}

// LoadDataset reads a dataset written by Save.
func LoadDataset(path string) (Dataset, error) {
	var d Dataset
	compressed, err := datasetCompression(path)
	if err != nil {
		return d, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return d, err
	}
	if info.IsDir() {
		return d, ErrExpectedFile
	}
	f, err := os.Open(path)
	if err != nil {
		return d, err
	}
	defer f.Close()
	if err := decodeJSON(f, &d, compressed); err != nil {
		return d, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	if d.Values == nil {
		return d, fmt.Errorf("%w: %s", ErrEmptyDataset, path)
	}
	return d, nil
}
