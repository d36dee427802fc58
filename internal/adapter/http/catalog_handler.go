package http

import (
	"net/http"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	svc *usecase.OrderService
}

func NewCatalogHandler(svc *usecase.OrderService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.svc.ShowCategories()})
}

// GetCatalog lists products, filtered by ?category= when given. An empty
// list is a valid response, not an error.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.svc.ShowCatalog(c.Query("category"))})
}

func (h *CatalogHandler) GetOffers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.svc.SpecialOffers()})
}
