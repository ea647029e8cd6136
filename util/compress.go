package util

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"io"
	"os"
	"strings"
)

// Dataset file extensions.
const (
	ExtJSON     = ".json"
	ExtJSONGzip = ".json.gz"
)

// datasetCompression reports whether path names a gzip dataset.
func datasetCompression(path string) (bool, error) {
	switch {
	case strings.HasSuffix(path, ExtJSONGzip):
		return true, nil
	case strings.HasSuffix(path, ExtJSON):
		return false, nil
	}
	return false, ErrUnknownDatasetFormat
}

func encodeJSON(w io.Writer, v any, compressed bool) error {
	bw := bufio.NewWriter(w)
	if !compressed {
		if err := json.NewEncoder(bw).Encode(v); err != nil {
			return err
		}
		return bw.Flush()
	}
	zw := gzip.NewWriter(bw)
	if err := json.NewEncoder(zw).Encode(v); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return bw.Flush()
}

func decodeJSON(r io.Reader, v any, compressed bool) error {
	br := bufio.NewReader(r)
	if !compressed {
		return json.NewDecoder(br).Decode(v)
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		return err
	}
	defer zr.Close()
	return json.NewDecoder(zr).Decode(v)
}

// WriteJSONFile writes any value as indented JSON to the specified file path.
func WriteJSONFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	je := json.NewEncoder(f)
	je.SetIndent("", "  ")
	return je.Encode(v)
}
