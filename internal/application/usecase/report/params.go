package report

import (
	"time"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
	domainerror "github.com/madrasah-accounts/backend/internal/domain/error"
)

// Params is the shared input for the report use cases: a period selection
// and an optional receiver. Reference defaults to now when zero.
type Params struct {
	Mode       entity.PeriodMode
	CustomFrom string
	CustomTo   string
	Receiver   string
	Reference  time.Time
}

// resolveFilter validates the params and resolves them into a report filter.
func resolveFilter(params Params) (Filter, error) {
	if !params.Mode.IsValid() {
		return Filter{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriodMode,
			"invalid period mode",
			domainerror.ErrInvalidPeriodMode,
		)
	}

	reference := params.Reference
	if reference.IsZero() {
		reference = time.Now()
	}

	period := ResolvePeriod(params.Mode, reference)
	if params.Mode == entity.PeriodCustom {
		if params.CustomFrom != "" && !entity.IsValidDate(params.CustomFrom) {
			return Filter{}, domainerror.NewReportError(
				domainerror.ErrCodeInvalidDateFormat,
				"invalid fromDate",
				domainerror.ErrInvalidDateFormat,
			)
		}
		if params.CustomTo != "" && !entity.IsValidDate(params.CustomTo) {
			return Filter{}, domainerror.NewReportError(
				domainerror.ErrCodeInvalidDateFormat,
				"invalid toDate",
				domainerror.ErrInvalidDateFormat,
			)
		}
		if params.CustomFrom != "" && params.CustomTo != "" && params.CustomTo < params.CustomFrom {
			return Filter{}, domainerror.NewReportError(
				domainerror.ErrCodeInvalidDateRange,
				"toDate must not be before fromDate",
				domainerror.ErrInvalidDateRange,
			)
		}
		period.FromDate = params.CustomFrom
		period.ToDate = params.CustomTo
	}

	return Filter{Period: period, Receiver: params.Receiver}, nil
}
