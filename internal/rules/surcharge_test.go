package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sentence-engine/internal/model"
)

func TestSurchargePredatesScheme(t *testing.T) {
	got := VictimSurcharge(date(2012, time.September, 30), 35, model.SentenceFine, fptr(1000), nil)
	assert.Equal(t, 0.0, got)
}

func TestSurchargeRegimeSelection(t *testing.T) {
	// Conditional discharge figure identifies the regime.
	tests := []struct {
		offenceDate time.Time
		want        float64
	}{
		{date(2012, time.October, 1), 15},
		{date(2016, time.April, 7), 15},
		{date(2016, time.April, 8), 20},
		{date(2019, time.June, 28), 21},
		{date(2020, time.April, 14), 22},
		{date(2022, time.June, 15), 22},
		{date(2022, time.June, 16), 26},
		{date(2024, time.January, 1), 26},
	}

	for _, tc := range tests {
		got := VictimSurcharge(tc.offenceDate, 35, model.SentenceConditionalDischarge, nil, nil)
		assert.Equal(t, tc.want, got, "offence date %s", tc.offenceDate.Format("2006-01-02"))
	}
}

func TestSurchargeAdultFineCurrentRegime(t *testing.T) {
	// 40% of the fine, capped at 2000.
	got := VictimSurcharge(date(2024, time.January, 1), 35, model.SentenceFine, fptr(1000), nil)
	assert.Equal(t, 400.0, got)

	got = VictimSurcharge(date(2024, time.January, 1), 35, model.SentenceFine, fptr(10000), nil)
	assert.Equal(t, 2000.0, got)

	// No fine amount supplied.
	got = VictimSurcharge(date(2024, time.January, 1), 35, model.SentenceFine, nil, nil)
	assert.Equal(t, 0.0, got)
}

func TestSurchargeAdultFineEarlierRegimeClamps(t *testing.T) {
	// 2020 regime: 10% of fine clamped into [34, 190].
	day := date(2021, time.January, 1)

	got := VictimSurcharge(day, 35, model.SentenceFine, fptr(1000), nil)
	assert.Equal(t, 100.0, got)

	got = VictimSurcharge(day, 35, model.SentenceFine, fptr(100), nil)
	assert.Equal(t, 34.0, got)

	got = VictimSurcharge(day, 35, model.SentenceFine, fptr(5000), nil)
	assert.Equal(t, 190.0, got)
}

func TestSurchargeAdultBands(t *testing.T) {
	day := date(2024, time.January, 1)

	assert.Equal(t, 114.0, VictimSurcharge(day, 35, model.SentenceCommunityOrder, nil, nil))
	assert.Equal(t, 114.0, VictimSurcharge(day, 35, model.SentenceYouthRehabilitationOrder, nil, nil))

	assert.Equal(t, 154.0, VictimSurcharge(day, 35, model.SentenceSuspendedOrder, nil, fptr(6)))
	assert.Equal(t, 187.0, VictimSurcharge(day, 35, model.SentenceSuspendedOrder, nil, fptr(7)))

	assert.Equal(t, 154.0, VictimSurcharge(day, 35, model.SentenceDeterminateCustodial, nil, fptr(6)))
	assert.Equal(t, 187.0, VictimSurcharge(day, 35, model.SentenceDeterminateCustodial, nil, fptr(24)))
	assert.Equal(t, 228.0, VictimSurcharge(day, 35, model.SentenceDeterminateCustodial, nil, fptr(25)))

	// A custodial sentence with no term lands in the lowest custody band.
	assert.Equal(t, 154.0, VictimSurcharge(day, 35, model.SentenceDeterminateCustodial, nil, nil))

	// Unknown disposal carries no surcharge.
	assert.Equal(t, 0.0, VictimSurcharge(day, 35, model.SentenceType("binding_over"), nil, nil))
}

func TestSurchargeYouthBands(t *testing.T) {
	day := date(2024, time.January, 1)

	assert.Equal(t, 20.0, VictimSurcharge(day, 17, model.SentenceConditionalDischarge, nil, nil))
	assert.Equal(t, 26.0, VictimSurcharge(day, 17, model.SentenceFine, fptr(200), nil))
	assert.Equal(t, 26.0, VictimSurcharge(day, 17, model.SentenceYouthRehabilitationOrder, nil, nil))
	assert.Equal(t, 26.0, VictimSurcharge(day, 17, model.SentenceCommunityOrder, nil, nil))
	assert.Equal(t, 41.0, VictimSurcharge(day, 17, model.SentenceDTO, nil, fptr(8)))
	assert.Equal(t, 41.0, VictimSurcharge(day, 17, model.SentenceSuspendedOrder, nil, fptr(4)))
	assert.Equal(t, 0.0, VictimSurcharge(day, 17, model.SentenceType("binding_over"), nil, nil))
}

// The youth/adult split keys off age at offence, not age at sentence.
func TestSurchargeAgeBoundary(t *testing.T) {
	day := date(2024, time.January, 1)
	assert.Equal(t, 20.0, VictimSurcharge(day, 17, model.SentenceConditionalDischarge, nil, nil))
	assert.Equal(t, 26.0, VictimSurcharge(day, 18, model.SentenceConditionalDischarge, nil, nil))
}
