package handler

import (
	"net/http"
	"testing"

	"github.com/idosos/backend/internal/api/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupAddress(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{"known code", "01001000", http.StatusOK},
		{"invalid code", "00000000", http.StatusNotFound},
		{"rejected by provider", "abc", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)

			w := env.makeRequest(t, http.MethodGet, "/cep/"+tt.code, "")
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestLookupAddress_Response(t *testing.T) {
	env := setupTestEnv(t)

	w := env.makeRequest(t, http.MethodGet, "/cep/01001000", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, dto.AddressResponse{
		Street:       "Praça da Sé",
		Number:       "",
		Neighborhood: "Sé",
		City:         "São Paulo",
		State:        "SP",
		PostalCode:   "01001-000",
	}, parseJSON[dto.AddressResponse](t, w))

	// A lookup never creates a record
	assert.Equal(t, 0, env.countElders(t))
}

func TestLookupAddress_ProviderDown(t *testing.T) {
	env := setupTestEnv(t)
	env.provider.Close()

	w := env.makeRequest(t, http.MethodGet, "/cep/01001000", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, parseErrorResponse(t, w).Error)
}
