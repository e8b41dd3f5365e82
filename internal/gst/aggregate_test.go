package gst

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbooks/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// intraState builds an intra-state transaction: CGST and SGST split the rate
// equally, IGST stays zero.
func intraState(docNo string, day time.Time, dir domain.Direction, rate, taxable string) domain.TaxableTransaction {
	r, tv := dec(rate), dec(taxable)
	half := tv.Mul(r).Div(dec("200"))
	return domain.TaxableTransaction{
		DocumentNumber:  docNo,
		TransactionDate: day,
		Direction:       dir,
		GSTRate:         r,
		TaxableValue:    tv,
		CGST:            half,
		SGST:            half,
		IGST:            decimal.Zero,
		GrandTotal:      tv.Add(half).Add(half),
	}
}

func interState(docNo string, day time.Time, dir domain.Direction, rate, taxable string) domain.TaxableTransaction {
	r, tv := dec(rate), dec(taxable)
	igst := tv.Mul(r).Div(dec("100"))
	return domain.TaxableTransaction{
		DocumentNumber:  docNo,
		TransactionDate: day,
		Direction:       dir,
		GSTRate:         r,
		TaxableValue:    tv,
		CGST:            decimal.Zero,
		SGST:            decimal.Zero,
		IGST:            igst,
		GrandTotal:      tv.Add(igst),
	}
}

func feb2024() Period {
	return Period{Start: date(2024, time.February, 1), End: date(2024, time.February, 29)}
}

func TestAggregate_SingleRateBucket(t *testing.T) {
	txns := []domain.TaxableTransaction{
		intraState("INV-1", date(2024, time.February, 5), domain.DirectionOutward, "18", "1000"),
		intraState("INV-2", date(2024, time.February, 10), domain.DirectionOutward, "18", "2000"),
	}

	agg := Aggregate(txns, feb2024(), domain.DirectionOutward)

	require.Len(t, agg.RateBuckets, 1)
	b := agg.RateBuckets[0]
	assert.True(t, b.GSTRate.Equal(dec("18")))
	assert.Equal(t, 2, b.Count)
	assert.True(t, b.TaxableValue.Equal(dec("3000")), "taxable = %s", b.TaxableValue)
	assert.True(t, b.CGST.Equal(dec("270")), "cgst = %s", b.CGST)
	assert.True(t, b.SGST.Equal(dec("270")), "sgst = %s", b.SGST)
	assert.True(t, b.IGST.IsZero())

	assert.True(t, agg.TaxableValue.Equal(dec("3000")))
	assert.True(t, agg.CGST.Equal(dec("270")))
	assert.True(t, agg.SGST.Equal(dec("270")))
	assert.True(t, agg.IGST.IsZero())
}

func TestAggregate_Empty(t *testing.T) {
	agg := Aggregate(nil, feb2024(), domain.DirectionOutward)

	assert.Empty(t, agg.RateBuckets)
	assert.NotNil(t, agg.RateBuckets)
	assert.True(t, agg.TaxableValue.IsZero())
	assert.True(t, agg.CGST.IsZero())
	assert.True(t, agg.SGST.IsZero())
	assert.True(t, agg.IGST.IsZero())
}

func TestAggregate_FiltersDirection(t *testing.T) {
	txns := []domain.TaxableTransaction{
		intraState("INV-1", date(2024, time.February, 5), domain.DirectionOutward, "18", "1000"),
		intraState("PUR-1", date(2024, time.February, 6), domain.DirectionInward, "18", "400"),
	}

	out := Aggregate(txns, feb2024(), domain.DirectionOutward)
	in := Aggregate(txns, feb2024(), domain.DirectionInward)

	assert.True(t, out.TaxableValue.Equal(dec("1000")))
	assert.True(t, in.TaxableValue.Equal(dec("400")))

	// Partitioning is total: the two aggregates together cover every record.
	outCount, inCount := 0, 0
	for _, b := range out.RateBuckets {
		outCount += b.Count
	}
	for _, b := range in.RateBuckets {
		inCount += b.Count
	}
	assert.Equal(t, len(txns), outCount+inCount)
}

func TestAggregate_FiltersPeriod_InclusiveBounds(t *testing.T) {
	txns := []domain.TaxableTransaction{
		intraState("INV-0", date(2024, time.January, 31), domain.DirectionOutward, "18", "100"),
		intraState("INV-1", date(2024, time.February, 1), domain.DirectionOutward, "18", "200"),
		intraState("INV-2", date(2024, time.February, 29), domain.DirectionOutward, "18", "300"),
		intraState("INV-3", date(2024, time.March, 1), domain.DirectionOutward, "18", "400"),
	}

	agg := Aggregate(txns, feb2024(), domain.DirectionOutward)

	assert.True(t, agg.TaxableValue.Equal(dec("500")), "taxable = %s", agg.TaxableValue)
	require.Len(t, agg.RateBuckets, 1)
	assert.Equal(t, 2, agg.RateBuckets[0].Count)
}

func TestAggregate_BucketSumsMatchTotals(t *testing.T) {
	txns := []domain.TaxableTransaction{
		intraState("INV-1", date(2024, time.February, 3), domain.DirectionOutward, "5", "123.45"),
		intraState("INV-2", date(2024, time.February, 7), domain.DirectionOutward, "12", "999.99"),
		interState("INV-3", date(2024, time.February, 11), domain.DirectionOutward, "18", "5000.01"),
		intraState("INV-4", date(2024, time.February, 15), domain.DirectionOutward, "18", "0.01"),
		interState("INV-5", date(2024, time.February, 21), domain.DirectionOutward, "28", "777777.77"),
	}

	agg := Aggregate(txns, feb2024(), domain.DirectionOutward)

	taxable, cgst, sgst, igst := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, b := range agg.RateBuckets {
		taxable = taxable.Add(b.TaxableValue)
		cgst = cgst.Add(b.CGST)
		sgst = sgst.Add(b.SGST)
		igst = igst.Add(b.IGST)
	}

	assert.True(t, taxable.Equal(agg.TaxableValue))
	assert.True(t, cgst.Equal(agg.CGST))
	assert.True(t, sgst.Equal(agg.SGST))
	assert.True(t, igst.Equal(agg.IGST))
}

func TestAggregate_BucketsSortedByRate(t *testing.T) {
	txns := []domain.TaxableTransaction{
		intraState("INV-1", date(2024, time.February, 3), domain.DirectionOutward, "28", "100"),
		intraState("INV-2", date(2024, time.February, 4), domain.DirectionOutward, "5", "100"),
		intraState("INV-3", date(2024, time.February, 5), domain.DirectionOutward, "18", "100"),
	}

	agg := Aggregate(txns, feb2024(), domain.DirectionOutward)

	require.Len(t, agg.RateBuckets, 3)
	assert.True(t, agg.RateBuckets[0].GSTRate.Equal(dec("5")))
	assert.True(t, agg.RateBuckets[1].GSTRate.Equal(dec("18")))
	assert.True(t, agg.RateBuckets[2].GSTRate.Equal(dec("28")))
}

func TestDetailRows_SortedByDateAscending(t *testing.T) {
	txns := []domain.TaxableTransaction{
		intraState("INV-9", date(2024, time.February, 20), domain.DirectionOutward, "18", "100"),
		intraState("INV-2", date(2024, time.February, 2), domain.DirectionOutward, "18", "200"),
		intraState("INV-1", date(2024, time.February, 2), domain.DirectionOutward, "18", "300"),
	}

	rows := DetailRows(txns, feb2024(), domain.DirectionOutward)

	require.Len(t, rows, 3)
	assert.Equal(t, "INV-1", rows[0].DocumentNumber)
	assert.Equal(t, "INV-2", rows[1].DocumentNumber)
	assert.Equal(t, "INV-9", rows[2].DocumentNumber)
}

func TestDetailRows_EmptyIsNotNil(t *testing.T) {
	rows := DetailRows(nil, feb2024(), domain.DirectionOutward)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
