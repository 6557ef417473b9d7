// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madrasah-accounts/backend/internal/application/usecase/counterparty"
	domainerror "github.com/madrasah-accounts/backend/internal/domain/error"
	"github.com/madrasah-accounts/backend/internal/integration/entrypoint/dto"
	"github.com/madrasah-accounts/backend/internal/integration/entrypoint/middleware"
)

// CounterpartyController handles counterparty and saved-sender endpoints.
type CounterpartyController struct {
	listUseCase         *counterparty.ListCounterpartiesUseCase
	listSendersUseCase  *counterparty.ListSavedSendersUseCase
	saveSenderUseCase   *counterparty.SaveSenderUseCase
	deleteSenderUseCase *counterparty.DeleteSenderUseCase
}

// NewCounterpartyController creates a new counterparty controller instance.
func NewCounterpartyController(
	listUseCase *counterparty.ListCounterpartiesUseCase,
	listSendersUseCase *counterparty.ListSavedSendersUseCase,
	saveSenderUseCase *counterparty.SaveSenderUseCase,
	deleteSenderUseCase *counterparty.DeleteSenderUseCase,
) *CounterpartyController {
	return &CounterpartyController{
		listUseCase:         listUseCase,
		listSendersUseCase:  listSendersUseCase,
		saveSenderUseCase:   saveSenderUseCase,
		deleteSenderUseCase: deleteSenderUseCase,
	}
}

// List handles GET /counterparties requests. Trial sessions see the
// trial dataset.
func (c *CounterpartyController) List(ctx *gin.Context) {
	input := counterparty.ListCounterpartiesInput{
		Kind:  ctx.Query("kind"),
		Trial: middleware.IsTrialSession(ctx),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCounterpartyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCounterpartyListResponse(output.Counterparties))
}

// ListSavedSenders handles GET /saved-senders requests.
func (c *CounterpartyController) ListSavedSenders(ctx *gin.Context) {
	senders, err := c.listSendersUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCounterpartyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SavedSenderListResponse{Senders: senders})
}

// SaveSender handles POST /saved-senders requests.
func (c *CounterpartyController) SaveSender(ctx *gin.Context) {
	var req dto.SaveSenderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptySenderName),
		})
		return
	}

	saved, err := c.saveSenderUseCase.Execute(ctx.Request.Context(), req.Sender)
	if err != nil {
		c.handleCounterpartyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Sender saved: " + saved})
}

// DeleteSender handles DELETE /saved-senders/:sender requests.
func (c *CounterpartyController) DeleteSender(ctx *gin.Context) {
	if err := c.deleteSenderUseCase.Execute(ctx.Request.Context(), ctx.Param("sender")); err != nil {
		c.handleCounterpartyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Sender removed"})
}

// handleCounterpartyError maps counterparty errors to HTTP responses.
func (c *CounterpartyController) handleCounterpartyError(ctx *gin.Context, err error) {
	var cptErr *domainerror.CounterpartyError
	if errors.As(err, &cptErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: cptErr.Message,
			Code:  string(cptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
