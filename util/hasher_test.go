package util

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestGetHash(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:  "hello world",
			input: "hello world",
			want:  "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetHash(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("GetHash() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("GetHash() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := FileHash(path)
	if err != nil {
		t.Fatalf("FileHash() error = %v", err)
	}
	if want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"; got != want {
		t.Errorf("FileHash() = %v, want %v", got, want)
	}
	if _, err := FileHash(filepath.Join(t.TempDir(), "missing")); !os.IsNotExist(err) {
		t.Errorf("FileHash() error = %v, want not-exist", err)
	}
}

func TestValuesHash(t *testing.T) {
	if got := ValuesHash(nil); got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Errorf("ValuesHash(nil) = %s, want hash of no bytes", got)
	}
	a := ValuesHash([]int{1, 2, 3})
	if a != ValuesHash([]int{1, 2, 3}) {
		t.Error("ValuesHash is not deterministic")
	}
	if a == ValuesHash([]int{3, 2, 1}) {
		t.Error("ValuesHash ignores order")
	}
	if len(a) != 64 {
		t.Errorf("ValuesHash length = %d, want 64", len(a))
	}
}

func TestHashPathFromHash(t *testing.T) {
	hash := ValuesHash([]int{4, 2})
	path := HashPathFromHash(hash)

	bucket, rest, ok := strings.Cut(path, "-")
	if !ok {
		t.Fatalf("HashPathFromHash() = %q, missing separator", path)
	}
	if rest != hash {
		t.Errorf("hash part = %q, want %q", rest, hash)
	}
	n, err := strconv.Atoi(bucket)
	if err != nil {
		t.Fatalf("bucket %q is not a number", bucket)
	}
	if n < 0 || n >= BucketCount {
		t.Errorf("bucket %d outside [0, %d)", n, BucketCount)
	}
	if HashPathFromHash(hash) != path {
		t.Error("HashPathFromHash is not deterministic")
	}
}

func TestDatasetFileName(t *testing.T) {
	d := NewDataset(KindRandom, []int{9, 8, 7})
	plain := DatasetFileName(d, false)
	packed := DatasetFileName(d, true)

	if !strings.HasSuffix(plain, ExtJSON) {
		t.Errorf("plain name %q lacks %s", plain, ExtJSON)
	}
	if packed != plain+".gz" {
		t.Errorf("packed name = %q, want %q", packed, plain+".gz")
	}

	// Identity does not affect the name, only the values do.
	other := NewDataset(KindShuffled, []int{9, 8, 7})
	if DatasetFileName(other, false) != plain {
		t.Error("equal values produced different file names")
	}
}

func TestHashFromFileName(t *testing.T) {
	hash := ValuesHash([]int{1})
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain", input: HashPathFromHash(hash) + ExtJSON, want: hash},
		{name: "gzip", input: HashPathFromHash(hash) + ExtJSONGzip, want: hash},
		{name: "no bucket", input: hash + ExtJSON, wantErr: ErrInvalidDatasetName},
		{name: "non numeric bucket", input: "abc-" + hash + ExtJSON, wantErr: ErrInvalidDatasetName},
		{name: "empty hash", input: "12-" + ExtJSON, wantErr: ErrInvalidDatasetName},
		{name: "wrong extension", input: "12-" + hash + ".txt", wantErr: ErrInvalidDatasetName},
		{name: "short hash", input: "2024-data" + ExtJSON, wantErr: ErrInvalidDatasetName},
		{name: "non hex hash", input: "12-" + strings.Repeat("z", 64) + ExtJSON, wantErr: ErrInvalidDatasetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HashFromFileName(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("HashFromFileName() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("HashFromFileName() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("HashFromFileName() = %v, want %v", got, tt.want)
			}
		})
	}
}
