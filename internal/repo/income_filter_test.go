package repo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/financial-data-api/internal/models"
)

func sampleRecords() []models.FinancialRecord {
	return []models.FinancialRecord{
		{Date: "2023-09-30", Revenue: 383285, NetIncome: 96995},
		{Date: "2022-09-24", Revenue: 394328, NetIncome: 99803},
		{Date: "2021-09-25", Revenue: 365817, NetIncome: 94680},
		{Date: "2020-09-26", Revenue: 274515, NetIncome: 57411},
		{Date: "2019-09-28", Revenue: 260174, NetIncome: 55256},
	}
}

func dates(records []models.FinancialRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Date
	}
	return out
}

func mustFilter(t *testing.T, q IncomeQuery) IncomeFilter {
	t.Helper()
	f, err := ParseIncomeFilter(q)
	require.NoError(t, err)
	return f
}

func TestFilterRecords_NoBoundsReturnsInputInOrder(t *testing.T) {
	records := sampleRecords()

	got := FilterRecords(records, mustFilter(t, IncomeQuery{}))

	assert.Equal(t, records, got)
}

func TestFilterRecords_EmptyInputGivesEmptySlice(t *testing.T) {
	got := FilterRecords(nil, IncomeFilter{})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterRecords_SingleBounds(t *testing.T) {
	tests := []struct {
		name  string
		query IncomeQuery
		want  []string
		check func(models.FinancialRecord) bool
	}{
		{
			name:  "start_date",
			query: IncomeQuery{StartDate: "2021-09-25"},
			want:  []string{"2023-09-30", "2022-09-24", "2021-09-25"},
			check: func(r models.FinancialRecord) bool { return r.Date >= "2021-09-25" },
		},
		{
			name:  "end_date",
			query: IncomeQuery{EndDate: "2020-09-26"},
			want:  []string{"2020-09-26", "2019-09-28"},
			check: func(r models.FinancialRecord) bool { return r.Date <= "2020-09-26" },
		},
		{
			name:  "min_revenue",
			query: IncomeQuery{MinRevenue: "365817"},
			want:  []string{"2023-09-30", "2022-09-24", "2021-09-25"},
			check: func(r models.FinancialRecord) bool { return r.Revenue >= 365817 },
		},
		{
			name:  "max_revenue",
			query: IncomeQuery{MaxRevenue: "274515"},
			want:  []string{"2020-09-26", "2019-09-28"},
			check: func(r models.FinancialRecord) bool { return r.Revenue <= 274515 },
		},
		{
			name:  "min_net_income",
			query: IncomeQuery{MinNetIncome: "96995"},
			want:  []string{"2023-09-30", "2022-09-24"},
			check: func(r models.FinancialRecord) bool { return r.NetIncome >= 96995 },
		},
		{
			name:  "max_net_income",
			query: IncomeQuery{MaxNetIncome: "57411"},
			want:  []string{"2020-09-26", "2019-09-28"},
			check: func(r models.FinancialRecord) bool { return r.NetIncome <= 57411 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRecords(sampleRecords(), mustFilter(t, tt.query))
			assert.Equal(t, tt.want, dates(got))
			for _, r := range got {
				assert.True(t, tt.check(r), "record %s violates %s", r.Date, tt.name)
			}
		})
	}
}

func TestFilterRecords_BoundsAreConjunctive(t *testing.T) {
	// 2021-09-25 satisfies every bound except max_net_income.
	q := IncomeQuery{
		StartDate:    "2021-01-01",
		EndDate:      "2021-12-31",
		MinRevenue:   "300000",
		MaxRevenue:   "400000",
		MaxNetIncome: "90000",
	}

	got := FilterRecords(sampleRecords(), mustFilter(t, q))
	assert.Empty(t, got)

	q.MaxNetIncome = ""
	got = FilterRecords(sampleRecords(), mustFilter(t, q))
	assert.Equal(t, []string{"2021-09-25"}, dates(got))
}

func TestFilterRecords_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := sampleRecords()

	_ = FilterRecords(records, mustFilter(t, IncomeQuery{MinRevenue: "390000"}))

	assert.Equal(t, before, records)
}

func TestParseIncomeFilter_EmptyEqualsAbsent(t *testing.T) {
	f := mustFilter(t, IncomeQuery{StartDate: "", EndDate: "", MinRevenue: "", MaxRevenue: "", MinNetIncome: "", MaxNetIncome: ""})
	assert.Equal(t, IncomeFilter{}, f)
}

func TestParseIncomeFilter_ZeroIsABound(t *testing.T) {
	f := mustFilter(t, IncomeQuery{MaxNetIncome: "0"})
	require.NotNil(t, f.MaxNetIncome)
	assert.Equal(t, int64(0), *f.MaxNetIncome)

	records := []models.FinancialRecord{
		{Date: "2001-09-29", Revenue: 5363, NetIncome: -25},
		{Date: "2002-09-28", Revenue: 5742, NetIncome: 65},
	}
	got := FilterRecords(records, f)
	assert.Equal(t, []string{"2001-09-29"}, dates(got))
}

func TestParseIncomeFilter_DatesUsedVerbatim(t *testing.T) {
	f := mustFilter(t, IncomeQuery{StartDate: "not-a-date"})
	require.NotNil(t, f.StartDate)
	assert.Equal(t, "not-a-date", *f.StartDate)
}

func TestParseIncomeFilter_NegativeNumbers(t *testing.T) {
	f := mustFilter(t, IncomeQuery{MinNetIncome: "-100"})
	require.NotNil(t, f.MinNetIncome)
	assert.Equal(t, int64(-100), *f.MinNetIncome)
}

func TestParseIncomeFilter_InvalidInteger(t *testing.T) {
	tests := []struct {
		name  string
		query IncomeQuery
		param string
	}{
		{name: "letters", query: IncomeQuery{MinRevenue: "abc"}, param: "min_revenue"},
		{name: "decimal", query: IncomeQuery{MaxRevenue: "1.5"}, param: "max_revenue"},
		{name: "spaces", query: IncomeQuery{MinNetIncome: " 10"}, param: "min_net_income"},
		{name: "overflow", query: IncomeQuery{MaxNetIncome: "99999999999999999999"}, param: "max_net_income"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIncomeFilter(tt.query)
			require.Error(t, err)

			var pe *ParamError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.param, pe.Param)

			var numErr *strconv.NumError
			assert.True(t, errors.As(err, &numErr))
			assert.Contains(t, err.Error(), tt.param+": ")
		})
	}
}
