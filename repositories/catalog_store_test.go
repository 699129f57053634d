package repositories

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadProducts(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		dir := t.TempDir()
		raw := `[{"id":1,"name":"Webcam","category":"Accessories","price":2499,"description":"1080p","image":"/img/w.jpg","stock":3}]`
		if err := os.WriteFile(filepath.Join(dir, "products.json"), []byte(raw), 0o600); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		products, err := NewCatalogStore(dir).ReadProducts()
		if err != nil {
			t.Fatalf("ReadProducts failed: %v", err)
		}
		if len(products) != 1 || products[0].Name != "Webcam" {
			t.Fatalf("unexpected products: %+v", products)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewCatalogStore(t.TempDir()).ReadProducts()
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})

	t.Run("corrupt file", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "products.json"), []byte("{broken"), 0o600); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		_, err := NewCatalogStore(dir).ReadProducts()
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestReadUsers(t *testing.T) {
	dir := t.TempDir()
	raw := `[{"id":9,"name":"Sana Kapoor","email":"sana@example.com","role":"customer","joinedDate":"2024-06-02"}]`
	if err := os.WriteFile(filepath.Join(dir, "users.json"), []byte(raw), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	users, err := NewCatalogStore(dir).ReadUsers()
	if err != nil {
		t.Fatalf("ReadUsers failed: %v", err)
	}
	if len(users) != 1 || users[0].JoinedDate != "2024-06-02" {
		t.Fatalf("unexpected users: %+v", users)
	}
}
