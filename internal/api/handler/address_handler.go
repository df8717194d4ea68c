package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/idosos/backend/internal/api/dto"
	"github.com/idosos/backend/internal/core/service"
)

type AddressHandler struct {
	addressService *service.AddressService
}

func NewAddressHandler(addressService *service.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
	}
}

// LookupAddress handles GET /cep/:code
func (h *AddressHandler) LookupAddress(c *gin.Context) {
	addr, err := h.addressService.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.AddressResponse{
		Street:       addr.Street,
		Number:       addr.Number,
		Neighborhood: addr.Neighborhood,
		City:         addr.City,
		State:        addr.State,
		PostalCode:   addr.PostalCode,
	})
}
