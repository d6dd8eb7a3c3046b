package deduction_test

import (
	"testing"

	"github.com/code-hero23/peopledesk-sub002/internal/deduction"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(entries []deduction.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}

func TestResolve_MixedLegacyList(t *testing.T) {
	raw := []byte(`[
		{"label":"Legacy","amount":100},
		{"label":"Recurring PF","amount":"200","isFixed":true},
		{"label":"Feb Advance","amount":500,"isFixed":false,"month":2,"year":2026},
		{"label":"March Loan","amount":1000,"isFixed":false,"month":3,"year":2026}
	]`)

	entries, err := deduction.Parse(raw)
	require.NoError(t, err)

	res := deduction.Resolve(entries, 2, 2026)
	assert.Equal(t, []string{"Legacy", "Recurring PF", "Feb Advance"}, labels(res.Applied))
	assert.True(t, res.Total.Equal(decimal.NewFromInt(800)), res.Total.String())
}

func TestResolve_FixedAppliesToEveryCycle(t *testing.T) {
	entries := []deduction.Entry{
		deduction.Fixed("PF", decimal.NewFromInt(1500)),
		deduction.Fixed("Canteen", decimal.RequireFromString("250.50")),
	}

	for month := 1; month <= 12; month++ {
		res := deduction.Resolve(entries, month, 2027)
		assert.Len(t, res.Applied, 2)
		assert.Equal(t, "1750.5", res.Total.String())
	}
}

func TestResolve_ScopedRequiresExactCycle(t *testing.T) {
	entries := []deduction.Entry{deduction.Scoped("Advance", decimal.NewFromInt(500), 2, 2026)}

	assert.Len(t, deduction.Resolve(entries, 2, 2026).Applied, 1)
	assert.Empty(t, deduction.Resolve(entries, 3, 2026).Applied)
	assert.Empty(t, deduction.Resolve(entries, 2, 2025).Applied)
}

func TestResolve_Empty(t *testing.T) {
	res := deduction.Resolve(nil, 2, 2026)
	assert.Empty(t, res.Applied)
	assert.True(t, res.Total.IsZero())
}

func TestNormalize_MalformedLegacyData(t *testing.T) {
	raw := []byte(`[
		{"label":"Bad amount","amount":"abc"},
		{"label":"Bad month","amount":300,"isFixed":false,"month":"feb","year":2026},
		{"label":"String scope","amount":"40","isFixed":false,"month":"2","year":"2026"},
		{"label":"No amount"}
	]`)

	entries, err := deduction.Parse(raw)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.True(t, entries[0].Amount.IsZero())
	assert.Equal(t, deduction.KindScoped, entries[1].Kind)
	assert.False(t, entries[1].AppliesTo(2, 2026))

	res := deduction.Resolve(entries, 2, 2026)
	assert.Equal(t, []string{"Bad amount", "String scope", "No amount"}, labels(res.Applied))
	assert.Equal(t, "40", res.Total.String())
}

func TestParse_InvalidJSON(t *testing.T) {
	entries, err := deduction.Parse([]byte(`{"not":"a list"}`))
	assert.Error(t, err)
	assert.Empty(t, entries)

	entries, err = deduction.Parse(nil)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParse_OddFlagKeepsOtherEntries(t *testing.T) {
	raw := []byte(`[
		{"label":"loan","amount":100},
		{"label":"odd","amount":50,"isFixed":"false","month":2,"year":2026},
		{"label":"numeric flag","amount":20,"isFixed":0,"month":3,"year":2026},
		{"label":"garbage flag","amount":5,"isFixed":"maybe"},
		"not an object",
		{"label":42,"amount":7,"isFixed":1}
	]`)

	entries, err := deduction.Parse(raw)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	assert.Equal(t, deduction.KindFixed, entries[0].Kind)
	assert.Equal(t, deduction.KindScoped, entries[1].Kind)
	assert.Equal(t, deduction.KindScoped, entries[2].Kind)
	assert.Equal(t, deduction.KindFixed, entries[3].Kind)
	assert.Equal(t, "42", entries[4].Label)

	res := deduction.Resolve(entries, 2, 2026)
	assert.Equal(t, []string{"loan", "odd", "garbage flag", "42"}, labels(res.Applied))
	assert.Equal(t, "162", res.Total.String())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, deduction.Validate(deduction.Fixed("PF", decimal.NewFromInt(10))))
	assert.NoError(t, deduction.Validate(deduction.Scoped("Advance", decimal.NewFromInt(10), 12, 2026)))
	assert.ErrorIs(t, deduction.Validate(deduction.Scoped("Advance", decimal.NewFromInt(10), 0, 2026)), deduction.ErrScopeRequired)
	assert.ErrorIs(t, deduction.Validate(deduction.Scoped("Advance", decimal.NewFromInt(10), 13, 2026)), deduction.ErrMonthRange)
	assert.ErrorIs(t, deduction.Validate(deduction.Fixed("PF", decimal.NewFromInt(-1))), deduction.ErrNegative)
}

func TestMarshal_WritesExplicitFlag(t *testing.T) {
	out, err := deduction.Marshal([]deduction.Entry{
		deduction.Fixed("PF", decimal.NewFromInt(1500)),
		deduction.Scoped("Advance", decimal.NewFromInt(500), 2, 2026),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"label":"PF","amount":1500,"isFixed":true},
		{"label":"Advance","amount":500,"isFixed":false,"month":2,"year":2026}
	]`, string(out))
}
