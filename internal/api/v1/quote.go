package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/pricing-engine/internal/api/dto"
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/hireloop/pricing-engine/internal/logger"
	"github.com/hireloop/pricing-engine/internal/service"
)

type QuoteHandler struct {
	quoteService service.QuoteService
	logger       *logger.Logger
}

func NewQuoteHandler(quoteService service.QuoteService, logger *logger.Logger) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		logger:       logger,
	}
}

// @Summary Create a quote
// @Description Prices an opportunity and returns the breakdown with its payment schedule
// @Tags Quotes
// @Accept json
// @Produce json
// @Param quote body dto.CreateQuoteRequest true "Quote request"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.quoteService.CreateQuote(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
