package services

import (
	"errors"
	"strings"

	"techstore/models"
	"techstore/repositories"
)

// ErrNotFound is returned when an id has no matching catalog record. It
// is a low-severity condition, distinct from a store read failure.
var ErrNotFound = errors.New("not found")

type CatalogService struct {
	store *repositories.CatalogStore
}

func NewCatalogService(store *repositories.CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) ListProducts() ([]models.Product, error) {
	return s.store.ReadProducts()
}

// GetProductByID does a linear scan over the store. Fine at this data
// scale; an id-indexed map built per read would be the next step for a
// larger catalog.
func (s *CatalogService) GetProductByID(id int) (*models.Product, error) {
	products, err := s.store.ReadProducts()
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

// ListProductsByCategory filters by case-insensitive exact category
// match. An unknown category yields an empty list, not an error.
func (s *CatalogService) ListProductsByCategory(category string) ([]models.Product, error) {
	products, err := s.store.ReadProducts()
	if err != nil {
		return nil, err
	}

	filtered := []models.Product{}
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *CatalogService) ListUsers() ([]models.User, error) {
	return s.store.ReadUsers()
}

func (s *CatalogService) GetUserByID(id int) (*models.User, error) {
	users, err := s.store.ReadUsers()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}
