// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/madrasah-accounts/backend/internal/application/usecase/table"
	"github.com/madrasah-accounts/backend/internal/application/usecase/transaction"
	"github.com/madrasah-accounts/backend/internal/domain/entity"
	domainerror "github.com/madrasah-accounts/backend/internal/domain/error"
	"github.com/madrasah-accounts/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	browseUseCase *table.BrowseTransactionsUseCase
	exportUseCase *table.ExportCSVUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	browseUseCase *table.BrowseTransactionsUseCase,
	exportUseCase *table.ExportCSVUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
		browseUseCase: browseUseCase,
		exportUseCase: exportUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{
		FromDate: ctx.Query("fromDate"),
		ToDate:   ctx.Query("toDate"),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionField),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		Date:        req.Date,
		Category:    entity.Category(req.Category),
		Subcategory: req.Subcategory,
		Sender:      req.Sender,
		Receiver:    req.Receiver,
		Remarks:     req.Remarks,
		Amount:      req.Amount,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{ID: id}); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}

// Browse handles GET /transactions/table requests: column filters, sort
// and pagination over the full snapshot.
func (c *TransactionController) Browse(ctx *gin.Context) {
	input := table.BrowseTransactionsInput{
		Filters:   parseColumnFilters(ctx),
		SortKey:   table.SortKey(ctx.Query("sortBy")),
		Direction: table.SortDirection(ctx.Query("sortDir")),
	}
	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if sizeStr := ctx.Query("pageSize"); sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil {
			input.PageSize = size
		}
	}

	output, err := c.browseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BrowseTransactionsResponse{
		Transactions: dto.ToTransactionListResponse(output.Result.Items),
		Page:         output.Result.Page,
		TotalPages:   output.Result.TotalPages,
		TotalCount:   output.Result.TotalCount,
	})
}

// ExportCSV handles GET /transactions/export requests. It streams the
// current table view as a CSV attachment.
func (c *TransactionController) ExportCSV(ctx *gin.Context) {
	input := table.ExportCSVInput{
		Filters:   parseColumnFilters(ctx),
		SortKey:   table.SortKey(ctx.Query("sortBy")),
		Direction: table.SortDirection(ctx.Query("sortDir")),
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+output.Filename)
	ctx.Data(http.StatusOK, "text/csv", output.Content)
}

// parseColumnFilters builds the table column filters from query params.
// Each text column takes a value plus an optional operator param, e.g.
// sender=acme&senderOp=equals. Unknown operators fall back to contains.
func parseColumnFilters(ctx *gin.Context) table.ColumnFilters {
	filters := table.ColumnFilters{
		Subcategory: parseTextFilter(ctx, "subcategory"),
		Sender:      parseTextFilter(ctx, "sender"),
		Receiver:    parseTextFilter(ctx, "receiver"),
		Remarks:     parseTextFilter(ctx, "remarks"),
		DateFrom:    ctx.Query("dateFrom"),
		DateTo:      ctx.Query("dateTo"),
	}

	if categoriesStr := ctx.Query("categories"); categoriesStr != "" {
		for _, raw := range strings.Split(categoriesStr, ",") {
			category := entity.Category(strings.TrimSpace(raw))
			if category.IsValid() {
				filters.Categories = append(filters.Categories, category)
			}
		}
	}

	if minStr := ctx.Query("amountMin"); minStr != "" {
		if min, err := decimal.NewFromString(minStr); err == nil {
			filters.AmountMin = &min
		}
	}
	if maxStr := ctx.Query("amountMax"); maxStr != "" {
		if max, err := decimal.NewFromString(maxStr); err == nil {
			filters.AmountMax = &max
		}
	}

	return filters
}

func parseTextFilter(ctx *gin.Context, column string) table.TextFilter {
	return table.TextFilter{
		Operator: table.TextOperator(ctx.Query(column + "Op")),
		Value:    ctx.Query(column),
	}
}

// handleTransactionError maps transaction errors to HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		statusCode := c.getStatusCodeForTransactionError(txnErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// handleReportError maps report errors to HTTP responses.
func (c *TransactionController) handleReportError(ctx *gin.Context, err error) {
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

// getStatusCodeForTransactionError maps transaction error codes to HTTP
// status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionCategory,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeMissingTransactionField,
		domainerror.ErrCodeRemarksTooShort:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
