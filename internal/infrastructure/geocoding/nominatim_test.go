package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hugohenrick/loja-api/internal/config"
	"github.com/hugohenrick/loja-api/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestClient(url string, timeout time.Duration) *NominatimClient {
	return NewNominatimClient(config.GeocoderConfig{
		BaseURL:   url,
		UserAgent: "loja-api-test/1.0",
		Timeout:   timeout,
	}, logger.NewNop())
}

func TestReverseGeocodeReturnsDisplayName(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"display_name": "  Amir Temur ko'chasi, Toshkent  "}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second)
	address := c.ReverseGeocode(context.Background(),
		decimal.RequireFromString("41.3111"), decimal.RequireFromString("69.2797"))

	assert.Equal(t, "Amir Temur ko'chasi, Toshkent", address)
	if assert.NotNil(t, got) {
		assert.Equal(t, "/reverse", got.URL.Path)
		q := got.URL.Query()
		assert.Equal(t, "jsonv2", q.Get("format"))
		assert.Equal(t, "41.311100", q.Get("lat"))
		assert.Equal(t, "69.279700", q.Get("lon"))
		assert.Equal(t, "18", q.Get("zoom"))
		assert.Equal(t, "1", q.Get("addressdetails"))
		assert.Equal(t, "loja-api-test/1.0", got.Header.Get("User-Agent"))
	}
}

func TestReverseGeocodeFailuresReturnEmpty(t *testing.T) {
	lat, lon := decimal.NewFromInt(1), decimal.NewFromInt(2)

	t.Run("status de erro", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()
		assert.Equal(t, "", newTestClient(srv.URL, time.Second).ReverseGeocode(context.Background(), lat, lon))
	})

	t.Run("json inválido", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer srv.Close()
		assert.Equal(t, "", newTestClient(srv.URL, time.Second).ReverseGeocode(context.Background(), lat, lon))
	})

	t.Run("sem display_name", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error": "Unable to geocode"}`))
		}))
		defer srv.Close()
		assert.Equal(t, "", newTestClient(srv.URL, time.Second).ReverseGeocode(context.Background(), lat, lon))
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()

		start := time.Now()
		assert.Equal(t, "", newTestClient(srv.URL, 100*time.Millisecond).ReverseGeocode(context.Background(), lat, lon))
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("servidor inacessível", func(t *testing.T) {
		assert.Equal(t, "", newTestClient("http://127.0.0.1:1", time.Second).ReverseGeocode(context.Background(), lat, lon))
	})
}
