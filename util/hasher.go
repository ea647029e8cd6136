package util

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/taigrr/colorhash"
)

// BucketCount is the number of name buckets used by HashPathFromHash.
const BucketCount = 1000

// GetHash returns the hex SHA-256 of everything read from r.
func GetHash(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to hash input: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// FileHash returns the SHA-256 of the bytes stored at path, compressed or
// not. Unlike ValuesHash it changes whenever the file is rewritten.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return GetHash(f)
}

// ValuesHash hashes values as a stream of little-endian int64s, so equal
// sequences hash equally regardless of how they are stored on disk.
func ValuesHash(values []int) string {
	h := sha256.New()
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// HashPathFromHash generates a content-addressed name from a hash in the
// format "bucket-hash" (e.g., "742-abc123..."). The bucket is a color hash
// of the hash modulo BucketCount and spreads files when listed by name.
func HashPathFromHash(hash string) string {
	bucket := colorhash.HashString(hash) % BucketCount
	if bucket < 0 {
		bucket = -bucket
	}
	return fmt.Sprintf("%d-%s", bucket, hash)
}

// DatasetFileName returns the content-addressed file name for d.
func DatasetFileName(d Dataset, compressed bool) string {
	ext := ExtJSON
	if compressed {
		ext = ExtJSONGzip
	}
	return HashPathFromHash(ValuesHash(d.Values)) + ext
}

// HashFromFileName extracts the hash from a name produced by
// DatasetFileName. Names that are not of that form, such as a dataset
// saved under a chosen name, return ErrInvalidDatasetName.
func HashFromFileName(name string) (string, error) {
	compressed, err := datasetCompression(name)
	if err != nil {
		return "", ErrInvalidDatasetName
	}
	ext := ExtJSON
	if compressed {
		ext = ExtJSONGzip
	}
	bucket, hash, ok := strings.Cut(strings.TrimSuffix(name, ext), "-")
	if !ok || len(hash) != sha256.Size*2 {
		return "", ErrInvalidDatasetName
	}
	if _, err := hex.DecodeString(hash); err != nil {
		return "", ErrInvalidDatasetName
	}
	if _, err := strconv.Atoi(bucket); err != nil {
		return "", ErrInvalidDatasetName
	}
	return hash, nil
}
