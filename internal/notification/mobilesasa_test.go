package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMobileSasaSender_Send(t *testing.T) {
	var got mobileSasaPayload
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewMobileSasaSender(srv.URL, "token123", "MOBILESASA")
	err := s.Send(context.Background(), "+254712345678", "hello")

	assert.NoError(t, err)
	assert.Equal(t, "Bearer token123", gotAuth)
	assert.Equal(t, "MOBILESASA", got.SenderID)
	assert.Equal(t, "hello", got.Message)
	// leading plus is stripped for the gateway
	assert.Equal(t, "254712345678", got.Phone)
}

func TestMobileSasaSender_Non2xxIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewMobileSasaSender(srv.URL, "token123", "MOBILESASA")
	err := s.Send(context.Background(), "+254712345678", "hello")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestMobileSasaSender_MissingToken(t *testing.T) {
	s := NewMobileSasaSender("https://example.invalid", "", "MOBILESASA")
	err := s.Send(context.Background(), "+254712345678", "hello")
	assert.Error(t, err)
}
