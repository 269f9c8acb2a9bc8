package rules

import (
	"math"
	"time"

	"sentence-engine/internal/model"
)

// surchargeRegime is one historical victim-surcharge order. Adult band slots:
// 0 conditional discharge, 1 fine minimum, 2 fine cap, 3 community/YRO,
// 4 suspended <=6m, 5 suspended >6m, 6 custody <=6m, 7 custody <=24m,
// 8 custody >24m. Youth band slots: 0 conditional discharge, 1 fine/YRO/
// community, 2 custody or suspended.
type surchargeRegime struct {
	effectiveFrom time.Time
	adultBand     [9]float64
	youthBand     [3]float64
	finePct       float64
}

// Surcharge orders newest first; the first regime whose effective date is on
// or before the offence date applies. Offences predating 2012-10-01 carry no
// surcharge.
var surchargeRegimes = []surchargeRegime{
	{
		effectiveFrom: date(2022, time.June, 16),
		adultBand:     [9]float64{26, 0, 2000, 114, 154, 187, 154, 187, 228},
		youthBand:     [3]float64{20, 26, 41},
		finePct:       0.40,
	},
	{
		effectiveFrom: date(2020, time.April, 14),
		adultBand:     [9]float64{22, 34, 190, 95, 128, 156, 128, 156, 190},
		youthBand:     [3]float64{17, 22, 34},
		finePct:       0.10,
	},
	{
		effectiveFrom: date(2019, time.June, 28),
		adultBand:     [9]float64{21, 32, 181, 90, 122, 149, 122, 149, 181},
		youthBand:     [3]float64{16, 21, 32},
		finePct:       0.10,
	},
	{
		effectiveFrom: date(2016, time.April, 8),
		adultBand:     [9]float64{20, 30, 170, 85, 115, 140, 115, 140, 170},
		youthBand:     [3]float64{15, 20, 30},
		finePct:       0.10,
	},
	{
		effectiveFrom: date(2012, time.October, 1),
		adultBand:     [9]float64{15, 20, 120, 60, 80, 100, 80, 100, 120},
		youthBand:     [3]float64{10, 15, 20},
		finePct:       0.10,
	},
}

// VictimSurcharge computes the statutory surcharge for the sentencing event.
// Banding keys off age at offence, not age at sentence.
func VictimSurcharge(offenceDate time.Time, ageAtOffence int, sentenceType model.SentenceType, fineAmount, custodialTermMonths *float64) float64 {
	var regime *surchargeRegime
	for i := range surchargeRegimes {
		if !offenceDate.Before(surchargeRegimes[i].effectiveFrom) {
			regime = &surchargeRegimes[i]
			break
		}
	}
	if regime == nil {
		return 0
	}

	months := 0.0
	if custodialTermMonths != nil {
		months = *custodialTermMonths
	}

	if ageAtOffence < 18 {
		switch {
		case sentenceType == model.SentenceConditionalDischarge:
			return regime.youthBand[0]
		case sentenceType == model.SentenceFine,
			sentenceType == model.SentenceYouthRehabilitationOrder,
			sentenceType == model.SentenceCommunityOrder:
			return regime.youthBand[1]
		case sentenceType.IsCustodial(), sentenceType == model.SentenceSuspendedOrder:
			return regime.youthBand[2]
		}
		return 0
	}

	switch {
	case sentenceType == model.SentenceConditionalDischarge:
		return regime.adultBand[0]

	case sentenceType == model.SentenceFine:
		if fineAmount == nil {
			return 0
		}
		amount := math.Round(*fineAmount * regime.finePct)
		if regime.finePct == 0.40 {
			return math.Min(regime.adultBand[2], amount)
		}
		return math.Min(regime.adultBand[2], math.Max(regime.adultBand[1], amount))

	case sentenceType == model.SentenceCommunityOrder, sentenceType == model.SentenceYouthRehabilitationOrder:
		return regime.adultBand[3]

	case sentenceType == model.SentenceSuspendedOrder:
		if months <= 6 {
			return regime.adultBand[4]
		}
		return regime.adultBand[5]

	case sentenceType.IsCustodial():
		switch {
		case months <= 6:
			return regime.adultBand[6]
		case months <= 24:
			return regime.adultBand[7]
		}
		return regime.adultBand[8]
	}

	return 0
}
