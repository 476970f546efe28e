package api

import (
	"net/http"

	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List courts
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.CourtView
// @Router /courts [get]
func (h *CatalogHandler) ListCourts(c *gin.Context) {
	courts, err := h.catalogQueries.ListCourts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, courts)
}

// @Summary List coaches
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.CoachView
// @Router /coaches [get]
func (h *CatalogHandler) ListCoaches(c *gin.Context) {
	coaches, err := h.catalogQueries.ListCoaches(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, coaches)
}

// @Summary List equipment
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.EquipmentView
// @Router /equipment [get]
func (h *CatalogHandler) ListEquipment(c *gin.Context) {
	equipment, err := h.catalogQueries.ListEquipment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, equipment)
}
