package huggingface_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartplan/pkg/huggingface"
)

func TestClassify(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)

		input, _ := req["inputs"].(string)
		if input == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if input == "cause_empty" {
			w.Write([]byte(`{"sequence":"cause_empty","labels":[],"scores":[]}`))
			return
		}

		w.Write([]byte(`{
			"sequence": "book a dentist appointment",
			"labels": ["errand", "personal task", "meeting"],
			"scores": [0.82, 0.11, 0.07]
		}`))
	}))
	defer ts.Close()

	client := huggingface.NewClient("test-key")
	client.SetAPIURL(ts.URL)

	t.Run("Top Label Returned", func(t *testing.T) {
		got, err := client.Classify(context.Background(), "book a dentist appointment", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Label != "errand" {
			t.Errorf("label = %q, want %q", got.Label, "errand")
		}
		if got.Score != 0.82 {
			t.Errorf("score = %v, want 0.82", got.Score)
		}
	})

	t.Run("API Error", func(t *testing.T) {
		_, err := client.Classify(context.Background(), "cause_500", nil)
		if err == nil {
			t.Fatal("expected error on 500 response")
		}
	})

	t.Run("Empty Response", func(t *testing.T) {
		_, err := client.Classify(context.Background(), "cause_empty", nil)
		if err == nil {
			t.Fatal("expected error on empty labels")
		}
	})

	t.Run("Context Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.Classify(ctx, "anything", nil)
		if err == nil {
			t.Fatal("expected error on cancelled context")
		}
	})
}
