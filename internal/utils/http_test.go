// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/legal-dms/models"
)

func TestWriteJSON_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	resp := models.Response{Success: true, Message: "Login successful", Token: "abc"}

	n, err := WriteJSON(w, resp, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	var decoded map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if decoded["success"] != true || decoded["token"] != "abc" {
		t.Errorf("unexpected body %s", w.Body.String())
	}
	if _, ok := decoded["user"]; ok {
		t.Error("expected empty user to be omitted")
	}
}

func TestWriteJSON_StatusCodes(t *testing.T) {
	for _, code := range []int{http.StatusCreated, http.StatusUnauthorized, http.StatusForbidden, http.StatusConflict} {
		w := httptest.NewRecorder()
		if _, err := WriteJSON(w, models.Response{}, code); err != nil {
			t.Fatalf("status %d: unexpected error %v", code, err)
		}
		if w.Code != code {
			t.Errorf("expected status %d, got %d", code, w.Code)
		}
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_NilData(t *testing.T) {
	w := httptest.NewRecorder()

	if _, err := WriteJSON(w, nil, http.StatusOK); err != nil {
		t.Fatalf("expected no error for nil data, got: %v", err)
	}
	if w.Body.String() != "null" {
		t.Errorf("expected body 'null', got '%s'", w.Body.String())
	}
}
