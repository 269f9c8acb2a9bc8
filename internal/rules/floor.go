package rules

import "fmt"

// ApplyMinimumSentenceFloor raises the pre- and post-plea terms to the decided
// floors. Terms are never lowered; a nil floor slot leaves its term untouched
// even when the decision triggered. Each adjustment yields one trace line.
func ApplyMinimumSentenceFloor(prePleaTermMonths, postPleaTermMonths *float64, decision MinimumSentenceDecision) (pre, post *float64, trace []string) {
	if !decision.Triggered {
		return prePleaTermMonths, postPleaTermMonths, nil
	}

	pre = prePleaTermMonths
	post = postPleaTermMonths

	if floor := decision.FloorPreMonths; floor != nil {
		switch {
		case pre == nil:
			pre = floor
			trace = append(trace, fmt.Sprintf("Pre-plea term set to minimum floor %v months", *floor))
		case *pre < *floor:
			trace = append(trace, fmt.Sprintf("Pre-plea term raised from %v to minimum floor %v months", *pre, *floor))
			pre = floor
		}
	}

	if floor := decision.FloorPostMonths; floor != nil {
		switch {
		case post == nil:
			post = floor
			trace = append(trace, fmt.Sprintf("Post-plea term set to minimum floor %v months", *floor))
		case *post < *floor:
			trace = append(trace, fmt.Sprintf("Post-plea term raised from %v to minimum floor %v months", *post, *floor))
			post = floor
		}
	}

	return pre, post, trace
}
