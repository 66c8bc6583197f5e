package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sigc-piloto/sigc-backend/internal/http/response"
	"github.com/sigc-piloto/sigc-backend/internal/services"
)

type CatalogHandler struct {
	catalog services.CatalogService
}

func NewCatalogHandler(catalog services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GET /api/universidades
func (h *CatalogHandler) ListUniversidades(c *gin.Context) {
	insts, err := h.catalog.ListActive(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, insts)
}
