package engine

import "sentence-engine/internal/model"

// ValidateInput checks the chronological and range invariants of a calculation
// request. All violations are collected so the caller sees every problem at
// once; an empty slice means the input is valid.
func ValidateInput(in *model.SentenceCalculationInput) []string {
	var errs []string

	if in.OffenceDate.After(in.ConvictionDate) {
		errs = append(errs, "offence_date must be on or before conviction_date")
	}
	if in.ConvictionDate.After(in.SentenceDate) {
		errs = append(errs, "conviction_date must be on or before sentence_date")
	}

	if in.AgeAtOffence < 10 || in.AgeAtOffence > 120 {
		errs = append(errs, "age_at_offence must be between 10 and 120")
	}
	if in.AgeAtConviction < in.AgeAtOffence {
		errs = append(errs, "age_at_conviction must be >= age_at_offence")
	}
	if in.AgeAtSentence < in.AgeAtConviction {
		errs = append(errs, "age_at_sentence must be >= age_at_conviction")
	}

	if in.PrePleaTermMonths != nil && *in.PrePleaTermMonths < 0 {
		errs = append(errs, "pre_plea_term_months must be non-negative")
	}
	if in.ExtensionMonths < 0 {
		errs = append(errs, "extension_months must be non-negative")
	}
	if in.FineAmount != nil && *in.FineAmount < 0 {
		errs = append(errs, "fine_amount must be non-negative")
	}

	return errs
}
