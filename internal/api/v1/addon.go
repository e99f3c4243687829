package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/pricing-engine/internal/api/dto"
	"github.com/hireloop/pricing-engine/internal/domain/addon"
	"github.com/hireloop/pricing-engine/internal/domain/baseline"
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/hireloop/pricing-engine/internal/logger"
)

type AddonHandler struct {
	registry     *addon.Registry
	baselineRepo baseline.Repository
	logger       *logger.Logger
}

func NewAddonHandler(registry *addon.Registry, baselineRepo baseline.Repository, logger *logger.Logger) *AddonHandler {
	return &AddonHandler{
		registry:     registry,
		baselineRepo: baselineRepo,
		logger:       logger,
	}
}

// @Summary List addons
// @Description Lists every registered addon in registration order
// @Tags Addons
// @Produce json
// @Success 200 {object} dto.ListAddonsResponse
// @Router /addons [get]
func (h *AddonHandler) ListAddons(c *gin.Context) {
	defs := h.registry.All()

	response := dto.ListAddonsResponse{
		Addons: make([]dto.AddonResponse, len(defs)),
		Total:  len(defs),
	}
	for i, def := range defs {
		response.Addons[i] = dto.AddonResponse{AddonDefinition: def}
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get an addon
// @Description Retrieves a registered addon by id
// @Tags Addons
// @Produce json
// @Param id path string true "Addon ID"
// @Success 200 {object} dto.AddonResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /addons/{id} [get]
func (h *AddonHandler) GetAddon(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("addon ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	def, err := h.registry.Get(id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.AddonResponse{AddonDefinition: def})
}

// @Summary Get a business unit baseline
// @Description Resolves the pricing baseline of a business unit
// @Tags BusinessUnits
// @Produce json
// @Param id path string true "Business unit ID"
// @Success 200 {object} dto.BaselineResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /business-units/{id}/baseline [get]
func (h *AddonHandler) GetBaseline(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("business unit ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	bl, err := h.baselineRepo.Resolve(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.BaselineResponse{PricingBaseline: bl})
}
