package rules

import (
	"fmt"
	"strings"
	"time"

	"sentence-engine/internal/model"
)

// MinimumSentenceDecision reports whether a statutory minimum-sentence floor
// applies and, if so, the floors for the pre- and post-plea terms. A nil floor
// slot means that slot is not constrained. Produced fresh per call and never
// mutated afterward.
type MinimumSentenceDecision struct {
	Triggered       bool
	FloorPreMonths  *float64
	FloorPostMonths *float64
	Reason          string
}

type minimumRule func(in *model.SentenceCalculationInput) MinimumSentenceDecision

// Each minimum-sentence code dispatches to its own rule, so the regimes stay
// independently testable.
var minimumRules = map[string]minimumRule{
	"A":  minimumDomesticBurglary,
	"B":  minimumClassATrafficking,
	"C1": minimumFirearms,
	"C2": minimumFirearms,
	"C3": minimumFirearms,
	"C4": minimumFirearms,
	"D":  minimumWeaponPossession,
	"E":  minimumThreatsWithWeapon,
}

// Effective offence dates for the firearms minimums, per code.
var firearmsEffectiveFrom = map[string]time.Time{
	"C1": date(2004, time.January, 22),
	"C2": date(2007, time.April, 6),
	"C3": date(2014, time.July, 14),
	"C4": date(1900, time.January, 1),
}

// MinimumSentence decides whether a statutory minimum applies to the case.
// The "unjust or exceptional" override always wins; an empty code means no
// minimum regime, and an unknown code degrades softly with a reason rather
// than failing.
func MinimumSentence(in *model.SentenceCalculationInput) MinimumSentenceDecision {
	if in.MinimumSentenceUnjustOrExceptional {
		return MinimumSentenceDecision{Reason: "minimum disapplied by input override"}
	}

	code := strings.ToUpper(strings.TrimSpace(in.Offence.MinimumSentenceCode))
	if code == "" {
		return MinimumSentenceDecision{}
	}

	rule, ok := minimumRules[code]
	if !ok {
		return MinimumSentenceDecision{Reason: fmt.Sprintf("Unsupported minimum code %s", code)}
	}
	return rule(in)
}

// guiltyPlea is the minimum-floor notion of a guilty plea: any stage other
// than not_guilty counts, independent of the exact plea-stage fraction.
func guiltyPlea(in *model.SentenceCalculationInput) bool {
	return in.PleaStage != model.PleaNotGuilty
}

// Code A: third domestic burglary, s.314 Sentencing Act 2020.
func minimumDomesticBurglary(in *model.SentenceCalculationInput) MinimumSentenceDecision {
	if in.AgeAtSentence >= 18 && in.PriorDomesticBurglaryCount >= 2 {
		floorPost := 36.0
		if guiltyPlea(in) {
			// 36 * 0.8: the first-stage plea factor applied to the floor itself.
			floorPost = 28.8
		}
		return MinimumSentenceDecision{
			Triggered:       true,
			FloorPreMonths:  fptr(36.0),
			FloorPostMonths: fptr(floorPost),
			Reason:          "Domestic burglary minimum",
		}
	}
	return MinimumSentenceDecision{Reason: "Conditions for A not met"}
}

// Code B: third Class A trafficking offence, s.313.
func minimumClassATrafficking(in *model.SentenceCalculationInput) MinimumSentenceDecision {
	if in.AgeAtSentence >= 18 &&
		!in.OffenceDate.Before(date(1997, time.October, 1)) &&
		in.PriorClassATraffickingCount >= 2 {
		floorPost := 84.0
		if guiltyPlea(in) {
			floorPost = 67.2
		}
		return MinimumSentenceDecision{
			Triggered:       true,
			FloorPreMonths:  fptr(84.0),
			FloorPostMonths: fptr(floorPost),
			Reason:          "Class A trafficking minimum",
		}
	}
	return MinimumSentenceDecision{Reason: "Conditions for B not met"}
}

// Codes C1-C4: firearms minimums, s.311, with per-code effective dates.
func minimumFirearms(in *model.SentenceCalculationInput) MinimumSentenceDecision {
	code := strings.ToUpper(strings.TrimSpace(in.Offence.MinimumSentenceCode))
	if in.OffenceDate.Before(firearmsEffectiveFrom[code]) {
		return MinimumSentenceDecision{Reason: "Firearms date threshold not met"}
	}
	switch {
	case in.AgeAtSentence >= 18:
		return MinimumSentenceDecision{
			Triggered:       true,
			FloorPreMonths:  fptr(60.0),
			FloorPostMonths: fptr(60.0),
			Reason:          "Firearms adult minimum",
		}
	case in.AgeAtSentence >= 16:
		return MinimumSentenceDecision{
			Triggered:       true,
			FloorPreMonths:  fptr(36.0),
			FloorPostMonths: fptr(36.0),
			Reason:          "Firearms youth minimum",
		}
	}
	return MinimumSentenceDecision{Reason: "Under 16"}
}

// Code D: repeat possession of a weapon/bladed article, s.315.
func minimumWeaponPossession(in *model.SentenceCalculationInput) MinimumSentenceDecision {
	if in.OffenceDate.Before(date(2015, time.July, 17)) {
		return MinimumSentenceDecision{Reason: "Weapon possession date threshold not met"}
	}
	if in.AgeAtOffence < 16 {
		return MinimumSentenceDecision{Reason: "Under 16 at offence"}
	}
	if !in.PriorRelevantWeaponConviction {
		return MinimumSentenceDecision{Reason: "No qualifying prior conviction"}
	}

	switch {
	case in.AgeAtConviction >= 18:
		floorPost := 6.0
		if guiltyPlea(in) {
			floorPost = 4.8
		}
		return MinimumSentenceDecision{
			Triggered:       true,
			FloorPreMonths:  fptr(6.0),
			FloorPostMonths: fptr(floorPost),
			Reason:          "Weapon possession adult minimum",
		}
	case in.AgeAtConviction >= 16:
		// DTO minimum: no post-plea floor figure exists for this route.
		return MinimumSentenceDecision{
			Triggered:      true,
			FloorPreMonths: fptr(4.0),
			Reason:         "Weapon possession youth DTO minimum",
		}
	}
	return MinimumSentenceDecision{Reason: "Under 16 at conviction"}
}

// Code E: threatening with a weapon/bladed article, s.312.
func minimumThreatsWithWeapon(in *model.SentenceCalculationInput) MinimumSentenceDecision {
	switch {
	case in.AgeAtSentence >= 18:
		floorPost := 6.0
		if guiltyPlea(in) {
			floorPost = 4.8
		}
		return MinimumSentenceDecision{
			Triggered:       true,
			FloorPreMonths:  fptr(6.0),
			FloorPostMonths: fptr(floorPost),
			Reason:          "Threats with weapon adult minimum",
		}
	case in.AgeAtSentence >= 16:
		return MinimumSentenceDecision{
			Triggered:      true,
			FloorPreMonths: fptr(4.0),
			Reason:         "Threats with weapon youth DTO minimum",
		}
	}
	return MinimumSentenceDecision{Reason: "Under 16"}
}
