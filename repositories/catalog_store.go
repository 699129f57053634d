package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"techstore/models"
)

// ErrStoreUnavailable marks a catalog file that could not be read or
// decoded. Callers can distinguish it from a plain not-found lookup.
var ErrStoreUnavailable = errors.New("catalog store unavailable")

// CatalogStore reads the flat JSON catalog files. Every call re-reads
// the file, so edits to data/ show up on the next request without a
// restart. There is deliberately no caching layer.
type CatalogStore struct {
	dataDir string
}

func NewCatalogStore(dataDir string) *CatalogStore {
	return &CatalogStore{dataDir: dataDir}
}

func (s *CatalogStore) ReadProducts() ([]models.Product, error) {
	products := []models.Product{}
	if err := s.readFile("products.json", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CatalogStore) ReadUsers() ([]models.User, error) {
	users := []models.User{}
	if err := s.readFile("users.json", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *CatalogStore) readFile(name string, out interface{}) error {
	path := filepath.Join(s.dataDir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrStoreUnavailable, name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrStoreUnavailable, name, err)
	}
	return nil
}
