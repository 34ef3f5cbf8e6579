package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fourline/orderfront/internal/domain/model"
	"github.com/fourline/orderfront/internal/server/http/dto"
)

// CatalogHandler serves the product catalog for the order create view.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler creates CatalogHandler instance.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /view/products.
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}

	c.JSON(http.StatusOK, response)
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          int64(p.ID),
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
	}
}
