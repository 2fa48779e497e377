package lrucache

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/minio/minlz"
	"go.dw1.io/rapidhash"
)

// Snapshot persistence. This layer is a collaborator of the cache rather
// than part of it: saving walks the public iterator and loading replays
// entries through [Cache.Put], so the on-disk format never sees arena
// indexes and survives a policy change between save and load.
//
// Snapshot layout: an 8-byte little-endian rapidhash checksum of the gob
// payload, followed by the minlz-compressed payload. The payload holds the
// capacity, the entry count and the entries, least recently used first.

// entry is used for serializing key-value pairs.
type entry[K comparable, V any] struct {
	Key   K
	Value V
}

// SaveToFile atomically saves cache data to the given filePath.
//
// The saved data may be loaded with [LoadFromFile].
func (c *Cache[K, V, P]) SaveToFile(filePath string) error {
	dir := filepath.Dir(filePath)
	if _, err := os.Stat(dir); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot stat %q: %s", dir, err)
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create dir %q: %s", dir, err)
		}
	}

	// Save cache data into a temporary file first, then rename.
	tmpFile, err := os.CreateTemp(dir, "lrucache.tmp.*")
	if err != nil {
		return fmt.Errorf("cannot create temporary file in %q: %s", dir, err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if err := c.SaveTo(tmpFile); err != nil {
		_ = tmpFile.Close()

		return fmt.Errorf("cannot save cache data to %q: %s", tmpPath, err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("cannot close temporary file %q: %s", tmpPath, err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("cannot rename %q to %q: %s", tmpPath, filePath, err)
	}

	return nil
}

// SaveTo writes a snapshot of the cache to w.
//
// The saved data may be loaded with [LoadFrom].
func (c *Cache[K, V, P]) SaveTo(w io.Writer) error {
	entries := make([]entry[K, V], 0, c.Len())
	for k, v := range c.All() {
		entries = append(entries, entry[K, V]{Key: k, Value: v})
	}

	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)

	if err := enc.Encode(c.capacity); err != nil {
		return fmt.Errorf("cannot encode capacity: %s", err)
	}
	if err := enc.Encode(len(entries)); err != nil {
		return fmt.Errorf("cannot encode entry count: %s", err)
	}

	// All yields most recent first; write in reverse so the load replay
	// finishes with the original head on top.
	for i := len(entries) - 1; i >= 0; i-- {
		if err := enc.Encode(entries[i]); err != nil {
			return fmt.Errorf("cannot encode entry: %s", err)
		}
	}

	var sum [8]byte
	binary.LittleEndian.PutUint64(sum[:], rapidhash.Hash(buf.Bytes()))
	if _, err := w.Write(sum[:]); err != nil {
		return fmt.Errorf("cannot write checksum: %s", err)
	}

	zw := minlz.NewWriter(w)
	if _, err := zw.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("cannot compress cache data: %s", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("cannot close minlz writer: %s", err)
	}

	return nil
}

// LoadFromFile loads cache data from the given filePath.
//
// Returns an error if the file does not exist or is corrupted.
//
// See [Cache.SaveToFile] for saving cache data to file.
func LoadFromFile[K comparable, V any, P Policy](filePath string) (*Cache[K, V, P], error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return LoadFrom[K, V, P](f)
}

// LoadFromFileOrNew tries loading cache data from the given filePath.
//
// The function falls back to creating a new cache with the given capacity
// if an error occurs during loading.
func LoadFromFileOrNew[K comparable, V any, P Policy](filePath string, capacity int) *Cache[K, V, P] {
	c, err := LoadFromFile[K, V, P](filePath)
	if err == nil {
		return c
	}

	return New[K, V, P](capacity)
}

// LoadFrom loads cache data from the given reader.
//
// Returns an error if the data is corrupted.
//
// See [Cache.SaveTo] for saving cache data to a writer.
func LoadFrom[K comparable, V any, P Policy](r io.Reader) (*Cache[K, V, P], error) {
	var sum [8]byte
	if _, err := io.ReadFull(r, sum[:]); err != nil {
		return nil, fmt.Errorf("cannot read checksum: %s", err)
	}

	payload, err := io.ReadAll(minlz.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("cannot decompress cache data: %s", err)
	}

	want := binary.LittleEndian.Uint64(sum[:])
	if got := rapidhash.Hash(payload); got != want {
		return nil, fmt.Errorf("checksum mismatch: got %016x; want %016x", got, want)
	}

	dec := gob.NewDecoder(bytes.NewReader(payload))

	var capacity int
	if err := dec.Decode(&capacity); err != nil {
		return nil, fmt.Errorf("cannot decode capacity: %s", err)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("invalid capacity %d", capacity)
	}

	var count int
	if err := dec.Decode(&count); err != nil {
		return nil, fmt.Errorf("cannot decode entry count: %s", err)
	}
	if count < 0 || count > capacity {
		return nil, fmt.Errorf("invalid entry count %d for capacity %d", count, capacity)
	}

	c := New[K, V, P](capacity)
	for i := 0; i < count; i++ {
		var e entry[K, V]
		if err := dec.Decode(&e); err != nil {
			return nil, fmt.Errorf("cannot decode entry %d: %s", i, err)
		}
		c.Put(e.Key, e.Value)
	}

	// The replay above is not caller activity.
	c.putCalls = 0

	return c, nil
}
