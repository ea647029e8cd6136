package util

import (
	"slices"

	"github.com/dendrascience/sorts/sorts"
	"github.com/dendrascience/sorts/version"
)

// Summary describes a dataset without its values.
type Summary struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Count        int    `json:"count"`
	Min          int    `json:"min"`
	Max          int    `json:"max"`
	Ordered      bool   `json:"ordered"`
	FileSHA256   string `json:"file_sha256,omitempty"`
	SortsVersion string `json:"sorts_version"`
}

// Summarize computes a Summary for d. It fails with the sorts input errors
// when d has no values.
func Summarize(d Dataset) (Summary, error) {
	s := Summary{
		ID:           d.ID,
		Kind:         d.Kind,
		Count:        d.Len(),
		SortsVersion: version.GetVersion(),
	}
	maxValue, err := sorts.Max(d.Values)
	if err != nil {
		return s, err
	}
	ordered, err := sorts.IsOrdered(d.Values)
	if err != nil {
		return s, err
	}
	s.Max = maxValue
	s.Min = slices.Min(d.Values)
	s.Ordered = ordered
	return s, nil
}

// SummarizeFile loads the dataset at path and summarizes it, recording the
// checksum of the file itself.
func SummarizeFile(path string) (Summary, error) {
	d, err := LoadDataset(path)
	if err != nil {
		return Summary{}, err
	}
	s, err := Summarize(d)
	if err != nil {
		return s, err
	}
	if s.FileSHA256, err = FileHash(path); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes the summary as JSON to path.
func (s Summary) Save(path string) error {
	return WriteJSONFile(path, s)
}
