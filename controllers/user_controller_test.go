package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"techstore/models"
)

func TestGetAllUsersEnvelope(t *testing.T) {
	router := newTestRouter(t, fixtureDir(t))

	w := doGet(t, router, "/api/users")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Success bool          `json:"success"`
		Count   int           `json:"count"`
		Data    []models.User `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if !body.Success || body.Count != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Data[0].JoinedDate != "2023-04-12" {
		t.Fatalf("joinedDate not carried through: %+v", body.Data[0])
	}
}

func TestGetUserByID(t *testing.T) {
	router := newTestRouter(t, fixtureDir(t))

	t.Run("found", func(t *testing.T) {
		w := doGet(t, router, "/api/users/1")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var body struct {
			Success bool        `json:"success"`
			Data    models.User `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if body.Data.Email != "priya@example.com" {
			t.Fatalf("unexpected user: %+v", body.Data)
		}
	})

	t.Run("unknown id -> 404", func(t *testing.T) {
		w := doGet(t, router, "/api/users/77")
		assertErrorEnvelope(t, w, http.StatusNotFound, "User not found")
	})

	t.Run("non-numeric id -> 404", func(t *testing.T) {
		w := doGet(t, router, "/api/users/admin")
		assertErrorEnvelope(t, w, http.StatusNotFound, "User not found")
	})
}
