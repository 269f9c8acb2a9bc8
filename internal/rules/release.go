package rules

import (
	"strings"

	"sentence-engine/internal/model"
)

// ReleaseDecision carries the fraction of the custodial term served before
// release. A nil fraction means release is not expressible as a determinate
// fraction (non-custodial, suspended or life sentences, or no term at all).
type ReleaseDecision struct {
	ReleaseFraction *float64
	Reason          string
}

// Provision/name markers that put a long determinate sentence on the
// two-thirds release point.
var seriousProvisionMarkers = []string{
	"manslaughter",
	"soliciting to commit murder",
	"grievous bodily harm with intent",
	"wounding with intent",
	"gbh with intent",
}

// Statutory provisions excluded from the forty-percent early-release regime.
var fortyPercentExclusions = []string{
	"serious crime act 2015 s.76",
	"serious crime act 2015 s.75a",
	"sentencing act 2020 s.363",
	"family law act 1996 s.42a",
	"domestic abuse act 2021 s.39",
	"national security act",
	"official secrets act",
}

// Release decides the release fraction for the (already floored) post-plea
// term. The branches are ordered; the first match wins.
func Release(in *model.SentenceCalculationInput, postPleaTermMonths *float64) ReleaseDecision {
	offence := &in.Offence

	if in.SentenceType.IsLife() {
		return ReleaseDecision{Reason: "Life sentence: release not represented as determinate fraction"}
	}
	if in.SentenceType.IsNonCustodial() {
		return ReleaseDecision{Reason: "Non-custodial sentence"}
	}
	if in.SentenceType == model.SentenceSuspendedOrder {
		return ReleaseDecision{Reason: "Suspended sentence: no immediate custody term"}
	}
	if postPleaTermMonths == nil {
		return ReleaseDecision{Reason: "No custodial term provided"}
	}
	if in.SentenceType == model.SentenceExtended || in.SentenceType == model.SentenceSpecialCustodial {
		return ReleaseDecision{ReleaseFraction: fptr(2.0 / 3.0), Reason: "Extended/special custodial release at two-thirds"}
	}
	if !in.SentenceType.IsCustodial() {
		return ReleaseDecision{Reason: "Sentence type not treated as custodial"}
	}

	term := *postPleaTermMonths
	lifeMax := offence.HasLifeMaximum()

	if term >= 84 && lifeMax && (offence.SpecifiedSexual || offence.SpecifiedViolent) {
		return ReleaseDecision{ReleaseFraction: fptr(2.0 / 3.0), Reason: "Term >= 84m + life max + specified offence"}
	}
	if offence.Schedule19ZA || in.TerrorismFlag {
		return ReleaseDecision{ReleaseFraction: fptr(2.0 / 3.0), Reason: "Schedule 19ZA / terrorism route"}
	}

	if term >= 48 {
		if lifeMax && offence.SpecifiedSexual {
			return ReleaseDecision{ReleaseFraction: fptr(2.0 / 3.0), Reason: "Sexual offence with life max and term >= 48m"}
		}
		provisionOrName := strings.ToLower(offence.Provision + " " + offence.CanonicalName)
		for _, marker := range seriousProvisionMarkers {
			if strings.Contains(provisionOrName, marker) {
				return ReleaseDecision{ReleaseFraction: fptr(2.0 / 3.0), Reason: "Specified serious offence marker with term >= 48m"}
			}
		}
	}

	fortyPercent := isFortyPercentRegime(offence, term)

	// The reference system swaps these two fractions. The flag keeps this
	// engine byte-compatible with it; clearing the flag gives the corrected
	// mapping. Both paths stay as they are.
	if in.ReplicateAceReleaseBug {
		if fortyPercent {
			return ReleaseDecision{ReleaseFraction: fptr(0.5), Reason: "Replicating sentenceACE inconsistency for forty-percent regime"}
		}
		return ReleaseDecision{ReleaseFraction: fptr(0.4), Reason: "Replicating sentenceACE inconsistency for non-forty-percent regime"}
	}

	if fortyPercent {
		return ReleaseDecision{ReleaseFraction: fptr(0.4), Reason: "Forty-percent regime"}
	}
	return ReleaseDecision{ReleaseFraction: fptr(0.5), Reason: "Halfway release regime"}
}

// isFortyPercentRegime classifies the offence for the forty-percent
// early-release point given the determinate term.
func isFortyPercentRegime(offence *model.OffenceRecord, termMonths float64) bool {
	if termMonths > 48 && offence.SpecifiedViolent {
		return false
	}
	if strings.Contains(strings.ToLower(offence.OffenceCategory), "sexual offence") {
		return false
	}

	provision := strings.ToLower(offence.Provision)
	if strings.Contains(provision, "protection from harassment") && strings.Contains(provision, "stalking") {
		return false
	}
	for _, marker := range fortyPercentExclusions {
		if strings.Contains(provision, marker) {
			return false
		}
	}
	return true
}
