// Package engine orchestrates the deterministic sentence calculation: plea
// discount, minimum-sentence floors, release fraction, victim surcharge and
// range lookup, with an ordered trace of every rule applied. It performs no
// I/O and is safe for concurrent use.
package engine

import (
	"fmt"
	"math"
	"strings"

	"sentence-engine/internal/model"
	"sentence-engine/internal/rules"
)

// ValidationError aggregates every input violation found before any
// computation runs.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// Calculate runs the full pipeline over one validated input and the
// caller-supplied sentencing matrix rows. It fails only on invalid input.
func Calculate(in *model.SentenceCalculationInput, matrixRows []model.SentencingMatrixRow) (*model.SentenceCalculationResult, error) {
	if violations := ValidateInput(in); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	var trace []string

	prePlea := in.PrePleaTermMonths
	postPlea := rules.SentenceAfterPlea(prePlea, in.PleaStage)
	if prePlea != nil {
		trace = append(trace, fmt.Sprintf("Applied plea factor for %s: pre=%v -> post=%v", in.PleaStage, *prePlea, *postPlea))
	}

	minDecision := rules.MinimumSentence(in)
	if minDecision.Triggered {
		reason := minDecision.Reason
		if reason == "" {
			reason = "Minimum sentence rule triggered"
		}
		trace = append(trace, reason)
	}

	prePlea, postPlea, floorTrace := rules.ApplyMinimumSentenceFloor(prePlea, postPlea, minDecision)
	trace = append(trace, floorTrace...)

	release := rules.Release(in, postPlea)
	trace = append(trace, release.Reason)

	var estimated *float64
	if postPlea != nil && release.ReleaseFraction != nil {
		v := round2(*postPlea * *release.ReleaseFraction)
		estimated = &v
	}

	surcharge := rules.VictimSurcharge(in.OffenceDate, in.AgeAtOffence, in.SentenceType, in.FineAmount, postPlea)

	matched := rules.PickSentencingRange(in.Culpability, in.Harm, matrixRows)
	warnings := buildWarnings(in, prePlea)

	return &model.SentenceCalculationResult{
		OffenceID:                    in.Offence.OffenceID,
		OffenceName:                  in.Offence.CanonicalName,
		SentenceType:                 in.SentenceType,
		PrePleaTermMonths:            prePlea,
		PostPleaTermMonths:           postPlea,
		MinimumSentenceTriggered:     minDecision.Triggered,
		MinimumFloorPrePleaMonths:    minDecision.FloorPreMonths,
		MinimumFloorPostPleaMonths:   minDecision.FloorPostMonths,
		ReleaseFraction:              release.ReleaseFraction,
		EstimatedTimeInCustodyMonths: estimated,
		VictimSurchargeGBP:           round2(surcharge),
		MatchedRange:                 matched,
		Warnings:                     warnings,
		Trace:                        trace,
	}, nil
}

// buildWarnings derives advisory flags independent of the main trace.
func buildWarnings(in *model.SentenceCalculationInput, prePleaTermMonths *float64) []string {
	var warnings []string
	offence := &in.Offence

	prePlea := 0.0
	if prePleaTermMonths != nil {
		prePlea = *prePleaTermMonths
	}

	if offence.ListedOffence && in.AgeAtSentence >= 18 && in.PriorListedOffenceWithCustody && prePlea >= 120 {
		warnings = append(warnings,
			"Mandatory life sentence route may be engaged for repeat listed offence; review SC283/SC273 conditions.")
	}

	if offence.SpecifiedViolent || offence.SpecifiedSexual || offence.SpecifiedTerrorist {
		if in.DangerousnessAssessed && offence.HasLifeMaximum() {
			warnings = append(warnings,
				"Dangerousness + specified offence + life max may trigger mandatory life provisions; review SC285/SC274/SC258.")
		}
	}

	if in.SentenceType == model.SentenceSpecialCustodial && !offence.Schedule18AOffence {
		warnings = append(warnings,
			"Special custodial sentence selected but offence is not marked Schedule 18A in offence metadata.")
	}

	return warnings
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
