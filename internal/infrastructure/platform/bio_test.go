package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHTTPBioFetcher_MarkerPresent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "aeobro-verify/1.0", r.Header.Get("User-Agent"))
		w.Write([]byte(`<html><body><p>Builder of things. aeobro-verify-abc123</p></body></html>`))
	}))
	defer server.Close()

	fetcher := NewHTTPBioFetcher(time.Second)
	found, err := fetcher.ContainsMarker(context.Background(), server.URL, "aeobro-verify-abc123")
	require.NoError(t, err)
	require.True(t, found)
}

func TestHTTPBioFetcher_MarkerAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>nothing here</body></html>`))
	}))
	defer server.Close()

	fetcher := NewHTTPBioFetcher(time.Second)
	found, err := fetcher.ContainsMarker(context.Background(), server.URL, "aeobro-verify-abc123")
	require.NoError(t, err)
	require.False(t, found)
}

func TestHTTPBioFetcher_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewHTTPBioFetcher(time.Second)
	_, err := fetcher.ContainsMarker(context.Background(), server.URL, "marker")
	require.Error(t, err)
}

func TestHTTPBioFetcher_Unreachable(t *testing.T) {
	fetcher := NewHTTPBioFetcher(100 * time.Millisecond)
	_, err := fetcher.ContainsMarker(context.Background(), "http://127.0.0.1:1/profile", "marker")
	require.Error(t, err)
}
