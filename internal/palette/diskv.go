package palette

import (
	"errors"
	"io/fs"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// recencyKey is the fixed storage key for the persisted recency list.
const recencyKey = "recent-commands"

// DiskStore persists the recency list as a single JSON value in a diskv
// bucket under the application data directory.
type DiskStore struct {
	d *diskv.Diskv
}

// NewDiskStore opens (creating if needed) a diskv bucket rooted at dir.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			CacheSizeMax: 64 * 1024,
		}),
	}
}

// Read returns the stored recency payload, or (nil, nil) when the key has
// never been written.
func (s *DiskStore) Read() ([]byte, error) {
	data, err := s.d.Read(recencyKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Write replaces the stored recency payload in full.
func (s *DiskStore) Write(data []byte) error {
	return s.d.Write(recencyKey, data)
}
