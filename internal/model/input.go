package model

import "time"

// PleaStage identifies when the guilty plea (if any) was entered.
type PleaStage string

const (
	PleaFirstStage                 PleaStage = "first_stage"
	PleaAfterFirstStageBeforeTrial PleaStage = "after_first_stage_before_trial"
	PleaDayOfTrial                 PleaStage = "day_of_trial"
	PleaAfterTrialBegins           PleaStage = "after_trial_begins"
	PleaNotGuilty                  PleaStage = "not_guilty"
)

// SentenceType is the disposal imposed by the court.
type SentenceType string

const (
	SentenceConditionalDischarge      SentenceType = "conditional_discharge"
	SentenceFine                      SentenceType = "fine"
	SentenceCommunityOrder            SentenceType = "community_order"
	SentenceYouthRehabilitationOrder  SentenceType = "youth_rehabilitation_order"
	SentenceDeterminateCustodial      SentenceType = "determinate_custodial_sentence"
	SentenceSuspendedOrder            SentenceType = "suspended_sentence_order"
	SentenceDTO                       SentenceType = "dto"
	SentenceYOIDetention              SentenceType = "yoi_detention"
	SentenceExtended                  SentenceType = "extended_sentence"
	SentenceSpecialCustodial          SentenceType = "special_custodial_sentence"
	SentenceDiscretionaryLife         SentenceType = "discretionary_life_sentence"
	SentenceMandatoryLife             SentenceType = "mandatory_life_sentence"
)

var custodialSentenceTypes = map[SentenceType]struct{}{
	SentenceDeterminateCustodial: {},
	SentenceDTO:                  {},
	SentenceYOIDetention:         {},
	SentenceExtended:             {},
	SentenceSpecialCustodial:     {},
	SentenceDiscretionaryLife:    {},
	SentenceMandatoryLife:        {},
}

// IsCustodial reports whether the sentence type carries a custodial term,
// including suspended and life variants.
func (s SentenceType) IsCustodial() bool {
	_, ok := custodialSentenceTypes[s]
	return ok
}

// IsLife reports whether the sentence type is a life sentence.
func (s SentenceType) IsLife() bool {
	return s == SentenceMandatoryLife || s == SentenceDiscretionaryLife
}

// IsNonCustodial reports whether the sentence type involves no custody at all.
func (s SentenceType) IsNonCustodial() bool {
	switch s {
	case SentenceCommunityOrder, SentenceYouthRehabilitationOrder, SentenceFine, SentenceConditionalDischarge:
		return true
	}
	return false
}

// SentenceCalculationInput is the immutable aggregate the engine computes from:
// one offence record plus the facts of the individual case.
type SentenceCalculationInput struct {
	Offence OffenceRecord

	OffenceDate    time.Time
	ConvictionDate time.Time
	SentenceDate   time.Time

	AgeAtOffence    int
	AgeAtConviction int
	AgeAtSentence   int

	PleaStage    PleaStage
	SentenceType SentenceType

	Culpability *string
	Harm        *string

	PrePleaTermMonths *float64
	ExtensionMonths   float64
	FineAmount        *float64

	DangerousnessAssessed         bool
	PriorListedOffenceWithCustody bool
	PriorDomesticBurglaryCount    int
	PriorClassATraffickingCount   int
	PriorRelevantWeaponConviction bool
	TerrorismFlag                 bool

	MinimumSentenceUnjustOrExceptional bool
	ReplicateAceReleaseBug             bool
}

// SentencingMatrixRow is one caller-supplied culpability/harm lookup row.
type SentencingMatrixRow struct {
	Culpability       string `json:"culpability"`
	Harm              string `json:"harm"`
	StartingPointText string `json:"starting_point_text"`
	CategoryRangeText string `json:"category_range_text"`
}
