// Package filestore implements storage.Store as a set of JSON documents in a
// directory, one per collection. It is meant for single-node deployments and
// for inspecting data by hand.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
	"github.com/jay4webdev/Bill-Tracker/internal/storage"
)

// Document keys. Each key is stored as <dir>/<key>.json.
const (
	KeyBills      = "billtrackr_data"
	KeyCategories = "billtrackr_categories"
	KeyUsers      = "billtrackr_users"
	KeyCompanies  = "billtrackr_companies"
)

var _ storage.Store = (*FileStore)(nil)

// FileStore keeps each collection in its own JSON file.
type FileStore struct {
	dir string

	// mu serialises writers so a read-modify-write never interleaves.
	mu sync.Mutex
}

// New opens (and creates if needed) a file store rooted at dir.
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Close is a no-op; files are not held open between calls.
func (s *FileStore) Close() error {
	return nil
}

// Load reads every document. Missing documents load as empty collections.
func (s *FileStore) Load(ctx context.Context) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &models.Snapshot{}
	if err := s.readBills(&snap.Bills); err != nil {
		return nil, err
	}
	if err := s.read(KeyCategories, &snap.Categories); err != nil {
		return nil, err
	}
	if err := s.read(KeyUsers, &snap.Users); err != nil {
		return nil, err
	}
	if err := s.read(KeyCompanies, &snap.Companies); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) read(key string, v any) error {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// write replaces a document atomically: the new content goes to a temp file
// in the same directory which is then renamed over the old one.
func (s *FileStore) write(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", key, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

// billDoc is a bill as the browser stored it, with the amount as a JSON
// number. Quoted amounts still decode.
type billDoc struct {
	models.Bill
	Amount json.Number `json:"amount"`
}

func (s *FileStore) readBills(bills *[]models.Bill) error {
	var docs []billDoc
	if err := s.read(KeyBills, &docs); err != nil {
		return err
	}
	out := make([]models.Bill, len(docs))
	for i, d := range docs {
		b := d.Bill
		if d.Amount != "" {
			amount, err := decimal.NewFromString(d.Amount.String())
			if err != nil {
				return fmt.Errorf("failed to decode %s: bill %s: %w", KeyBills, b.ID, err)
			}
			b.Amount = amount
		}
		out[i] = b
	}
	*bills = out
	return nil
}

func (s *FileStore) writeBills(bills []models.Bill) error {
	docs := make([]billDoc, len(bills))
	for i, b := range bills {
		docs[i] = billDoc{Bill: b, Amount: json.Number(b.Amount.String())}
	}
	return s.write(KeyBills, docs)
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
}
