package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/idosos/backend/internal/core/domain"
)

// Client resolves Brazilian postal codes (CEP) through the ViaCEP HTTP API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the provider at baseURL. Every lookup is a
// single round trip bounded by timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// addressResponse is the provider payload. Erro is present only when the
// code does not exist.
type addressResponse struct {
	CEP        string          `json:"cep"`
	Logradouro string          `json:"logradouro"`
	Numero     string          `json:"numero"`
	Bairro     string          `json:"bairro"`
	Localidade string          `json:"localidade"`
	UF         string          `json:"uf"`
	Erro       json.RawMessage `json:"erro,omitempty"`
}

// Resolve looks up postalCode. It returns domain.ErrNotFound when the
// provider rejects or does not know the code and *domain.UpstreamError for
// transport faults, timeouts and unreadable responses.
func (c *Client) Resolve(ctx context.Context, postalCode string) (*domain.Address, error) {
	endpoint := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, url.PathEscape(postalCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewUpstreamError(fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("postal code %s: provider returned %d: %w", postalCode, resp.StatusCode, domain.ErrNotFound)
	}

	var payload addressResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.NewUpstreamError(fmt.Errorf("failed to parse response: %w", err))
	}

	if len(payload.Erro) > 0 {
		return nil, fmt.Errorf("postal code %s: %w", postalCode, domain.ErrNotFound)
	}

	return &domain.Address{
		Street:       payload.Logradouro,
		Number:       payload.Numero,
		Neighborhood: payload.Bairro,
		City:         payload.Localidade,
		State:        payload.UF,
		PostalCode:   payload.CEP,
	}, nil
}
