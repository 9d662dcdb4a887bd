package morphology

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/duygulab/duygu/pkg/duygu/internalerr"
)

func newTestServer(t *testing.T, entries map[string][]Analysis) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/analyze", func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		resp := analyzeResponse{}
		for _, a := range entries[req.Token] {
			resp.Results = append(resp.Results, struct {
				Root      string   `json:"root"`
				Morphemes []string `json:"morphemes"`
			}{Root: a.Root, Morphemes: a.Markers})
		}
		json.NewEncoder(w).Encode(resp)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClientAnalyze(t *testing.T) {
	server := newTestServer(t, map[string][]Analysis{
		"değildi": {{Root: "değil", Markers: []string{"Verb", "Neg", "Past"}}},
	})
	client := &Client{BaseURL: server.URL}
	ctx := context.Background()

	analyses, err := client.Analyze(ctx, "değildi")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(analyses) != 1 {
		t.Fatalf("Analyze returned %d analyses, want 1", len(analyses))
	}
	if analyses[0].Root != "değil" || !analyses[0].IsNegatedVerb() {
		t.Errorf("unexpected analysis %+v", analyses[0])
	}

	// Unknown token: empty result, no error.
	analyses, err = client.Analyze(ctx, "bilinmeyen")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(analyses) != 0 {
		t.Errorf("unknown token returned %d analyses, want 0", len(analyses))
	}
}

func TestClientPing(t *testing.T) {
	server := newTestServer(t, nil)
	client := &Client{BaseURL: server.URL}
	if err := client.Ping(context.Background()); err != nil {
		t.Errorf("Ping against live server: %v", err)
	}
}

func TestClientPingUnavailable(t *testing.T) {
	server := newTestServer(t, nil)
	server.Close()

	client := &Client{BaseURL: server.URL}
	err := client.Ping(context.Background())
	if err == nil {
		t.Fatal("Ping against closed server should fail")
	}
	if !errors.Is(err, internalerr.ErrServiceUnavailable) {
		t.Errorf("Ping error = %v, want ErrServiceUnavailable", err)
	}
}

func TestClientAnalyzeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	if _, err := client.Analyze(context.Background(), "film"); err == nil {
		t.Error("Analyze should surface a non-2xx status as an error")
	}
}
