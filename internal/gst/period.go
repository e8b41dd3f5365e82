package gst

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gstbooks/internal/domain"
)

// PeriodSelector is a logical period choice. Value carries the textual
// selector for month/quarter/year kinds; Start and End are used only for
// PeriodCustom.
type PeriodSelector struct {
	Kind  domain.PeriodKind
	Value string
	Start time.Time
	End   time.Time
}

// Period is a resolved date range. Start and End are inclusive dates at
// midnight UTC.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the period, inclusive of both
// endpoints.
func (p Period) Contains(t time.Time) bool {
	d := dateOnly(t)
	return !d.Before(p.Start) && !d.After(p.End)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Resolve translates a period selector into a concrete date range.
//
//   - month "YYYY-MM": first to last day of the calendar month
//   - quarter "YYYY-Qn": calendar quarter (Q1 = Jan-Mar)
//   - calendar_year "YYYY": Jan 1 to Dec 31
//   - financial_year "YYYY": Apr 1 YYYY to Mar 31 YYYY+1 (India FY)
//   - custom: Start/End passed through after validation
func Resolve(sel PeriodSelector) (Period, error) {
	switch sel.Kind {
	case domain.PeriodMonth:
		start, err := time.ParseInLocation("2006-01", sel.Value, time.UTC)
		if err != nil {
			return Period{}, fmt.Errorf("%w: month must be YYYY-MM, got %q", domain.ErrInvalidPeriod, sel.Value)
		}
		return Period{Start: start, End: start.AddDate(0, 1, -1)}, nil

	case domain.PeriodQuarter:
		year, q, err := parseQuarter(sel.Value)
		if err != nil {
			return Period{}, err
		}
		start := time.Date(year, time.Month(3*(q-1)+1), 1, 0, 0, 0, 0, time.UTC)
		return Period{Start: start, End: start.AddDate(0, 3, -1)}, nil

	case domain.PeriodCalendarYear:
		year, err := parseYear(sel.Value)
		if err != nil {
			return Period{}, err
		}
		return Period{
			Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		}, nil

	case domain.PeriodFinancialYear:
		year, err := parseYear(sel.Value)
		if err != nil {
			return Period{}, err
		}
		return Period{
			Start: time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year+1, time.March, 31, 0, 0, 0, 0, time.UTC),
		}, nil

	case domain.PeriodCustom:
		start, end := dateOnly(sel.Start), dateOnly(sel.End)
		if start.After(end) {
			return Period{}, fmt.Errorf("%w: %s > %s",
				domain.ErrInvalidRange, start.Format("2006-01-02"), end.Format("2006-01-02"))
		}
		return Period{Start: start, End: end}, nil

	default:
		return Period{}, fmt.Errorf("%w: unknown period kind %q", domain.ErrInvalidPeriod, sel.Kind)
	}
}

func parseQuarter(v string) (year, quarter int, err error) {
	parts := strings.SplitN(v, "-Q", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: quarter must be YYYY-Qn, got %q", domain.ErrInvalidPeriod, v)
	}
	year, yerr := strconv.Atoi(parts[0])
	quarter, qerr := strconv.Atoi(parts[1])
	if yerr != nil || qerr != nil || quarter < 1 || quarter > 4 {
		return 0, 0, fmt.Errorf("%w: quarter must be YYYY-Qn with n in 1..4, got %q", domain.ErrInvalidPeriod, v)
	}
	return year, quarter, nil
}

func parseYear(v string) (int, error) {
	year, err := strconv.Atoi(v)
	if err != nil || len(v) != 4 {
		return 0, fmt.Errorf("%w: year must be YYYY, got %q", domain.ErrInvalidPeriod, v)
	}
	return year, nil
}
