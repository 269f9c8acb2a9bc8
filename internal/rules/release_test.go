package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentence-engine/internal/model"
)

func releaseInput(sentenceType model.SentenceType) *model.SentenceCalculationInput {
	in := adultInput("")
	in.SentenceType = sentenceType
	in.ReplicateAceReleaseBug = true
	return in
}

func TestReleaseLifeSentences(t *testing.T) {
	for _, st := range []model.SentenceType{model.SentenceMandatoryLife, model.SentenceDiscretionaryLife} {
		d := Release(releaseInput(st), fptr(120))
		assert.Nil(t, d.ReleaseFraction, "%s", st)
		assert.Equal(t, "Life sentence: release not represented as determinate fraction", d.Reason)
	}
}

func TestReleaseNonCustodial(t *testing.T) {
	for _, st := range []model.SentenceType{
		model.SentenceCommunityOrder,
		model.SentenceYouthRehabilitationOrder,
		model.SentenceFine,
		model.SentenceConditionalDischarge,
	} {
		d := Release(releaseInput(st), nil)
		assert.Nil(t, d.ReleaseFraction, "%s", st)
		assert.Equal(t, "Non-custodial sentence", d.Reason)
	}
}

func TestReleaseSuspended(t *testing.T) {
	d := Release(releaseInput(model.SentenceSuspendedOrder), fptr(6))
	assert.Nil(t, d.ReleaseFraction)
	assert.Equal(t, "Suspended sentence: no immediate custody term", d.Reason)
}

func TestReleaseNoTerm(t *testing.T) {
	d := Release(releaseInput(model.SentenceDeterminateCustodial), nil)
	assert.Nil(t, d.ReleaseFraction)
	assert.Equal(t, "No custodial term provided", d.Reason)
}

func TestReleaseExtendedAndSpecialCustodial(t *testing.T) {
	for _, st := range []model.SentenceType{model.SentenceExtended, model.SentenceSpecialCustodial} {
		d := Release(releaseInput(st), fptr(30))
		require.NotNil(t, d.ReleaseFraction, "%s", st)
		assert.Equal(t, 2.0/3.0, *d.ReleaseFraction)
	}
}

func TestReleaseUnknownTypeNotCustodial(t *testing.T) {
	d := Release(releaseInput(model.SentenceType("binding_over")), fptr(12))
	assert.Nil(t, d.ReleaseFraction)
	assert.Equal(t, "Sentence type not treated as custodial", d.Reason)
}

func TestReleaseTwoThirdsRoutes(t *testing.T) {
	// Term >= 84 + life max + specified offence.
	in := releaseInput(model.SentenceDeterminateCustodial)
	in.Offence.MaximumSentenceAmount = "Life"
	in.Offence.SpecifiedViolent = true
	d := Release(in, fptr(96))
	require.NotNil(t, d.ReleaseFraction)
	assert.Equal(t, 2.0/3.0, *d.ReleaseFraction)
	assert.Equal(t, "Term >= 84m + life max + specified offence", d.Reason)

	// Schedule 19ZA marking.
	in = releaseInput(model.SentenceDeterminateCustodial)
	in.Offence.Schedule19ZA = true
	d = Release(in, fptr(12))
	require.NotNil(t, d.ReleaseFraction)
	assert.Equal(t, 2.0/3.0, *d.ReleaseFraction)
	assert.Equal(t, "Schedule 19ZA / terrorism route", d.Reason)

	// Terrorism flag on the case.
	in = releaseInput(model.SentenceDeterminateCustodial)
	in.TerrorismFlag = true
	d = Release(in, fptr(12))
	require.NotNil(t, d.ReleaseFraction)
	assert.Equal(t, 2.0/3.0, *d.ReleaseFraction)

	// Sexual offence with life max at 48 months.
	in = releaseInput(model.SentenceDeterminateCustodial)
	in.Offence.MaximumSentenceAmount = "life"
	in.Offence.SpecifiedSexual = true
	d = Release(in, fptr(50))
	require.NotNil(t, d.ReleaseFraction)
	assert.Equal(t, "Sexual offence with life max and term >= 48m", d.Reason)

	// Serious provision marker at 48 months.
	in = releaseInput(model.SentenceDeterminateCustodial)
	in.Offence.Provision = "Offences Against the Person Act 1861 s.18"
	in.Offence.CanonicalName = "Wounding with intent to do grievous bodily harm"
	d = Release(in, fptr(50))
	require.NotNil(t, d.ReleaseFraction)
	assert.Equal(t, "Specified serious offence marker with term >= 48m", d.Reason)

	// Same marker below 48 months falls through to the regime split.
	d = Release(in, fptr(40))
	require.NotNil(t, d.ReleaseFraction)
	assert.NotEqual(t, 2.0/3.0, *d.ReleaseFraction)
}

func TestFortyPercentClassification(t *testing.T) {
	base := model.OffenceRecord{OffenceCategory: "Theft offences"}
	assert.True(t, isFortyPercentRegime(&base, 12))

	violent := model.OffenceRecord{SpecifiedViolent: true}
	assert.True(t, isFortyPercentRegime(&violent, 48))
	assert.False(t, isFortyPercentRegime(&violent, 49))

	sexual := model.OffenceRecord{OffenceCategory: "Sexual offences"}
	assert.False(t, isFortyPercentRegime(&sexual, 12))

	stalking := model.OffenceRecord{Provision: "Protection from Harassment Act 1997 s.4A stalking"}
	assert.False(t, isFortyPercentRegime(&stalking, 12))

	excluded := model.OffenceRecord{Provision: "Family Law Act 1996 s.42A"}
	assert.False(t, isFortyPercentRegime(&excluded, 12))
}

// The compatibility flag deliberately swaps the two fractions relative to the
// corrected mapping; both paths must stay exactly inverted.
func TestReleaseFractionInversion(t *testing.T) {
	fortyPercent := releaseInput(model.SentenceDeterminateCustodial)
	nonForty := releaseInput(model.SentenceDeterminateCustodial)
	nonForty.Offence.OffenceCategory = "Sexual offences"

	d := Release(fortyPercent, fptr(12))
	require.NotNil(t, d.ReleaseFraction)
	assert.Equal(t, 0.5, *d.ReleaseFraction)
	assert.Equal(t, "Replicating sentenceACE inconsistency for forty-percent regime", d.Reason)

	d = Release(nonForty, fptr(12))
	require.NotNil(t, d.ReleaseFraction)
	assert.Equal(t, 0.4, *d.ReleaseFraction)

	fortyPercent.ReplicateAceReleaseBug = false
	nonForty.ReplicateAceReleaseBug = false

	d = Release(fortyPercent, fptr(12))
	require.NotNil(t, d.ReleaseFraction)
	assert.Equal(t, 0.4, *d.ReleaseFraction)
	assert.Equal(t, "Forty-percent regime", d.Reason)

	d = Release(nonForty, fptr(12))
	require.NotNil(t, d.ReleaseFraction)
	assert.Equal(t, 0.5, *d.ReleaseFraction)
	assert.Equal(t, "Halfway release regime", d.Reason)
}

// Every combination of sentence type and flags lands on nil, 0.4, 0.5 or 2/3.
func TestReleaseFractionDomain(t *testing.T) {
	types := []model.SentenceType{
		model.SentenceConditionalDischarge, model.SentenceFine, model.SentenceCommunityOrder,
		model.SentenceYouthRehabilitationOrder, model.SentenceDeterminateCustodial,
		model.SentenceSuspendedOrder, model.SentenceDTO, model.SentenceYOIDetention,
		model.SentenceExtended, model.SentenceSpecialCustodial,
		model.SentenceDiscretionaryLife, model.SentenceMandatoryLife,
	}
	terms := []*float64{nil, fptr(3), fptr(30), fptr(60), fptr(120)}

	for _, st := range types {
		for _, term := range terms {
			for _, replicate := range []bool{true, false} {
				for _, terrorism := range []bool{true, false} {
					in := releaseInput(st)
					in.ReplicateAceReleaseBug = replicate
					in.TerrorismFlag = terrorism

					d := Release(in, term)
					if d.ReleaseFraction == nil {
						continue
					}
					assert.Contains(t, []float64{0.4, 0.5, 2.0 / 3.0}, *d.ReleaseFraction,
						"type=%s term=%v replicate=%v terrorism=%v", st, term, replicate, terrorism)
				}
			}
		}
	}
}
