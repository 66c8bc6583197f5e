package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainagg "github.com/sigc-piloto/sigc-backend/internal/domain/aggregates"
	"github.com/sigc-piloto/sigc-backend/internal/http/response"
	"github.com/sigc-piloto/sigc-backend/internal/platform/apierr"
	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
	"github.com/sigc-piloto/sigc-backend/internal/services"
)

type RegistroHandler struct {
	log       *logger.Logger
	registros services.RegistroService
}

func NewRegistroHandler(log *logger.Logger, registros services.RegistroService) *RegistroHandler {
	return &RegistroHandler{log: log.With("handler", "RegistroHandler"), registros: registros}
}

// POST /api/registro
func (h *RegistroHandler) Create(c *gin.Context) {
	var in domainagg.CreateRegistroInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.log.Debug("invalid registro payload", "error", err)
		response.RespondError(c, http.StatusUnprocessableEntity, apierr.CodeInvalidPayload, err)
		return
	}
	res, err := h.registros.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"message": "Registro creado", "rei_id": res.ReiID})
}

// GET /api/registros?universidad_siglas=&anio=
func (h *RegistroHandler) List(c *gin.Context) {
	filter := services.RegistroFilter{
		Siglas: c.Query("universidad_siglas"),
	}
	if raw := strings.TrimSpace(c.Query("anio")); raw != "" {
		anio, err := strconv.Atoi(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidParam, fmt.Errorf("anio must be an integer: %q", raw))
			return
		}
		filter.Anio = &anio
	}
	rows, err := h.registros.List(c.Request.Context(), filter)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, rows)
}

// GET /api/registro/:rei_id
func (h *RegistroHandler) Detail(c *gin.Context) {
	reiID, err := strconv.ParseInt(c.Param("rei_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidParam, fmt.Errorf("rei_id must be an integer: %q", c.Param("rei_id")))
		return
	}
	detail, err := h.registros.Detail(c.Request.Context(), reiID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, detail)
}
