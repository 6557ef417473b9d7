package entity

// PeriodMode names a reporting date-range preset.
type PeriodMode string

const (
	PeriodThisMonth      PeriodMode = "thisMonth"
	PeriodThisQuarter    PeriodMode = "thisQuarter"
	PeriodThisFiscalYear PeriodMode = "thisFiscalYear"
	PeriodAllTime        PeriodMode = "allTime"
	PeriodCustom         PeriodMode = "custom"
)

// IsValid reports whether the mode is one of the known presets.
func (m PeriodMode) IsValid() bool {
	switch m {
	case PeriodThisMonth, PeriodThisQuarter, PeriodThisFiscalYear, PeriodAllTime, PeriodCustom:
		return true
	}
	return false
}

// Period is a resolved reporting window. Empty FromDate/ToDate mean
// unbounded, which only allTime and an incomplete custom range produce.
type Period struct {
	Mode     PeriodMode
	FromDate string // YYYY-MM-DD, inclusive
	ToDate   string // YYYY-MM-DD, inclusive
}

// Bounded reports whether both ends of the period are set.
func (p Period) Bounded() bool {
	return p.FromDate != "" && p.ToDate != ""
}
