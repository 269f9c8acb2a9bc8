package handler

import (
	"fmt"
	"time"

	"sentence-engine/internal/model"
)

// CalculateRequest is the wire form of a calculation. Exactly one of Offence,
// OffenceID or OffenceQuery selects the offence; MatrixRows may be supplied
// inline or fetched from the catalog. Dates are YYYY-MM-DD strings.
type CalculateRequest struct {
	OffenceID    string               `json:"offence_id"`
	OffenceQuery string               `json:"offence_query"`
	Offence      *model.OffenceRecord `json:"offence"`

	OffenceDate    string `json:"offence_date"`
	ConvictionDate string `json:"conviction_date"`
	SentenceDate   string `json:"sentence_date"`

	AgeAtOffence    int `json:"age_at_offence"`
	AgeAtConviction int `json:"age_at_conviction"`
	AgeAtSentence   int `json:"age_at_sentence"`

	PleaStage    model.PleaStage    `json:"plea_stage"`
	SentenceType model.SentenceType `json:"sentence_type"`

	Culpability *string `json:"culpability"`
	Harm        *string `json:"harm"`

	PrePleaTermMonths *float64 `json:"pre_plea_term_months"`
	ExtensionMonths   float64  `json:"extension_months"`
	FineAmount        *float64 `json:"fine_amount"`

	DangerousnessAssessed         bool `json:"dangerousness_assessed"`
	PriorListedOffenceWithCustody bool `json:"prior_listed_offence_with_custody"`
	PriorDomesticBurglaryCount    int  `json:"prior_domestic_burglary_count"`
	PriorClassATraffickingCount   int  `json:"prior_class_a_trafficking_count"`
	PriorRelevantWeaponConviction bool `json:"prior_relevant_weapon_conviction"`
	TerrorismFlag                 bool `json:"terrorism_flag"`

	MinimumSentenceUnjustOrExceptional bool `json:"minimum_sentence_unjust_or_exceptional"`

	// Defaults to true when omitted.
	ReplicateAceReleaseBug *bool `json:"replicate_ace_release_bug"`

	MatrixRows []model.SentencingMatrixRow `json:"matrix_rows"`
}

const dateLayout = "2006-01-02"

// ToInput converts the wire request plus a resolved offence record into the
// engine's input aggregate.
func (r *CalculateRequest) ToInput(offence model.OffenceRecord) (*model.SentenceCalculationInput, error) {
	offenceDate, err := parseDate("offence_date", r.OffenceDate)
	if err != nil {
		return nil, err
	}
	convictionDate, err := parseDate("conviction_date", r.ConvictionDate)
	if err != nil {
		return nil, err
	}
	sentenceDate, err := parseDate("sentence_date", r.SentenceDate)
	if err != nil {
		return nil, err
	}

	replicate := true
	if r.ReplicateAceReleaseBug != nil {
		replicate = *r.ReplicateAceReleaseBug
	}

	return &model.SentenceCalculationInput{
		Offence:                            offence,
		OffenceDate:                        offenceDate,
		ConvictionDate:                     convictionDate,
		SentenceDate:                       sentenceDate,
		AgeAtOffence:                       r.AgeAtOffence,
		AgeAtConviction:                    r.AgeAtConviction,
		AgeAtSentence:                      r.AgeAtSentence,
		PleaStage:                          r.PleaStage,
		SentenceType:                       r.SentenceType,
		Culpability:                        r.Culpability,
		Harm:                               r.Harm,
		PrePleaTermMonths:                  r.PrePleaTermMonths,
		ExtensionMonths:                    r.ExtensionMonths,
		FineAmount:                         r.FineAmount,
		DangerousnessAssessed:              r.DangerousnessAssessed,
		PriorListedOffenceWithCustody:      r.PriorListedOffenceWithCustody,
		PriorDomesticBurglaryCount:         r.PriorDomesticBurglaryCount,
		PriorClassATraffickingCount:        r.PriorClassATraffickingCount,
		PriorRelevantWeaponConviction:      r.PriorRelevantWeaponConviction,
		TerrorismFlag:                      r.TerrorismFlag,
		MinimumSentenceUnjustOrExceptional: r.MinimumSentenceUnjustOrExceptional,
		ReplicateAceReleaseBug:             replicate,
	}, nil
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required (YYYY-MM-DD)", field)
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a YYYY-MM-DD date: %w", field, err)
	}
	return t, nil
}
