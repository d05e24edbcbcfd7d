// Package geocoding resolve coordenadas em endereços legíveis usando o Nominatim (OpenStreetMap).
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hugohenrick/loja-api/internal/config"
	"github.com/hugohenrick/loja-api/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// CoordinateDecimals é a precisão usada ao enviar e exibir coordenadas
const CoordinateDecimals = 6

// NominatimClient faz geocodificação reversa. Nunca retorna erro: qualquer falha vira "".
type NominatimClient struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	http      *http.Client
	limiter   *rate.Limiter
	log       logger.Logger
}

// NewNominatimClient cria um novo cliente a partir da configuração
func NewNominatimClient(cfg config.GeocoderConfig, log logger.Logger) *NominatimClient {
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	return &NominatimClient{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		timeout:   cfg.Timeout,
		http:      &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(limit, 1),
		log:       log,
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// ReverseGeocode retorna o display_name das coordenadas, ou "" em caso de falha
func (c *NominatimClient) ReverseGeocode(ctx context.Context, lat, lon decimal.Decimal) string {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	address, err := c.reverse(ctx, lat, lon)
	if err != nil {
		c.log.Warn("falha na geocodificação reversa",
			"lat", lat.StringFixed(CoordinateDecimals),
			"lon", lon.StringFixed(CoordinateDecimals),
			"error", err)
		return ""
	}
	return address
}

func (c *NominatimClient) reverse(ctx context.Context, lat, lon decimal.Decimal) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("limite de requisições: %w", err)
	}

	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("lat", lat.StringFixed(CoordinateDecimals))
	params.Set("lon", lon.StringFixed(CoordinateDecimals))
	params.Set("zoom", "18")
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status inesperado: %d", resp.StatusCode)
	}

	var payload reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("resposta inválida: %w", err)
	}
	return strings.TrimSpace(payload.DisplayName), nil
}
