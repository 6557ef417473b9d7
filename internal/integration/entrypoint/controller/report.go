// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madrasah-accounts/backend/internal/application/usecase/report"
	"github.com/madrasah-accounts/backend/internal/domain/entity"
	domainerror "github.com/madrasah-accounts/backend/internal/domain/error"
	"github.com/madrasah-accounts/backend/internal/integration/entrypoint/dto"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	summaryUseCase       *report.GetSummaryUseCase
	breakdownUseCase     *report.GetBreakdownUseCase
	receiverStatsUseCase *report.GetReceiverStatsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	summaryUseCase *report.GetSummaryUseCase,
	breakdownUseCase *report.GetBreakdownUseCase,
	receiverStatsUseCase *report.GetReceiverStatsUseCase,
) *ReportController {
	return &ReportController{
		summaryUseCase:       summaryUseCase,
		breakdownUseCase:     breakdownUseCase,
		receiverStatsUseCase: receiverStatsUseCase,
	}
}

// Summary handles GET /reports/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), report.GetSummaryInput{
		Params: parseReportParams(ctx),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// Breakdown handles GET /reports/breakdown requests.
func (c *ReportController) Breakdown(ctx *gin.Context) {
	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), report.GetBreakdownInput{
		Params: parseReportParams(ctx),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreakdownResponse(output))
}

// ReceiverStats handles GET /reports/receivers requests.
func (c *ReportController) ReceiverStats(ctx *gin.Context) {
	output, err := c.receiverStatsUseCase.Execute(ctx.Request.Context(), report.GetReceiverStatsInput{
		Params: parseReportParams(ctx),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReceiverStatsResponse(output))
}

// parseReportParams reads the shared report query params. The mode
// defaults to the current fiscal year.
func parseReportParams(ctx *gin.Context) report.Params {
	mode := entity.PeriodMode(ctx.DefaultQuery("mode", string(entity.PeriodThisFiscalYear)))
	return report.Params{
		Mode:       mode,
		CustomFrom: ctx.Query("fromDate"),
		CustomTo:   ctx.Query("toDate"),
		Receiver:   ctx.Query("receiver"),
	}
}

// handleReportError maps report errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		status := http.StatusBadRequest
		if rptErr.Code == domainerror.ErrCodeReportInternalError {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
