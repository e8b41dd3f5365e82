package gst

import (
	"sort"

	"github.com/shopspring/decimal"

	"gstbooks/internal/domain"
)

// Aggregate filters transactions to the period and direction, groups them by
// GST rate, and sums taxable value and tax components per bucket and in
// total. All sums use decimal arithmetic; an empty input yields zero totals
// and an empty bucket slice.
func Aggregate(txns []domain.TaxableTransaction, period Period, direction domain.Direction) domain.TaxAggregate {
	agg := domain.TaxAggregate{
		Direction:    direction,
		TaxableValue: decimal.Zero,
		CGST:         decimal.Zero,
		SGST:         decimal.Zero,
		IGST:         decimal.Zero,
		RateBuckets:  []domain.RateBucket{},
	}

	buckets := make(map[string]*domain.RateBucket)
	for i := range txns {
		t := &txns[i]
		if t.Direction != direction || !period.Contains(t.TransactionDate) {
			continue
		}

		key := t.GSTRate.String()
		b, ok := buckets[key]
		if !ok {
			b = &domain.RateBucket{
				GSTRate:      t.GSTRate,
				TaxableValue: decimal.Zero,
				CGST:         decimal.Zero,
				SGST:         decimal.Zero,
				IGST:         decimal.Zero,
			}
			buckets[key] = b
		}
		b.Count++
		b.TaxableValue = b.TaxableValue.Add(t.TaxableValue)
		b.CGST = b.CGST.Add(t.CGST)
		b.SGST = b.SGST.Add(t.SGST)
		b.IGST = b.IGST.Add(t.IGST)

		agg.TaxableValue = agg.TaxableValue.Add(t.TaxableValue)
		agg.CGST = agg.CGST.Add(t.CGST)
		agg.SGST = agg.SGST.Add(t.SGST)
		agg.IGST = agg.IGST.Add(t.IGST)
	}

	for _, b := range buckets {
		agg.RateBuckets = append(agg.RateBuckets, *b)
	}
	sort.Slice(agg.RateBuckets, func(i, j int) bool {
		return agg.RateBuckets[i].GSTRate.Cmp(agg.RateBuckets[j].GSTRate) < 0
	})

	return agg
}

// DetailRows returns document-level B2B rows for the period and direction,
// sorted by transaction date ascending with document number as tie-breaker.
func DetailRows(txns []domain.TaxableTransaction, period Period, direction domain.Direction) []domain.B2BRow {
	rows := make([]domain.B2BRow, 0)
	for i := range txns {
		t := &txns[i]
		if t.Direction != direction || !period.Contains(t.TransactionDate) {
			continue
		}
		rows = append(rows, domain.B2BRow{
			DocumentNumber: t.DocumentNumber,
			Date:           t.TransactionDate,
			PartyName:      t.PartyName,
			PartyGSTIN:     t.PartyGSTIN,
			TaxableValue:   t.TaxableValue,
			CGST:           t.CGST,
			SGST:           t.SGST,
			IGST:           t.IGST,
			GrandTotal:     t.GrandTotal,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		return rows[i].DocumentNumber < rows[j].DocumentNumber
	})
	return rows
}
