package rules

import (
	"strings"

	"sentence-engine/internal/model"
)

// PickSentencingRange finds the starting-point/range row for the requested
// culpability and harm labels. Matching is case-insensitive and trimmed:
// first pass exact equality on both labels, second pass substring containment
// of the requested label within the row's label. Absent labels or no match
// return nil rather than an error.
func PickSentencingRange(culpability, harm *string, matrixRows []model.SentencingMatrixRow) *model.SentencingRangeRecord {
	if culpability == nil || harm == nil || *culpability == "" || *harm == "" {
		return nil
	}

	desiredCulp := strings.ToLower(strings.TrimSpace(*culpability))
	desiredHarm := strings.ToLower(strings.TrimSpace(*harm))

	for i := range matrixRows {
		row := &matrixRows[i]
		if normalizeLabel(row.Culpability) == desiredCulp && normalizeLabel(row.Harm) == desiredHarm {
			return rangeRecord(row)
		}
	}

	// Fallback containment match, useful for values like "Category 1".
	for i := range matrixRows {
		row := &matrixRows[i]
		if strings.Contains(normalizeLabel(row.Culpability), desiredCulp) &&
			strings.Contains(normalizeLabel(row.Harm), desiredHarm) {
			return rangeRecord(row)
		}
	}

	return nil
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func rangeRecord(row *model.SentencingMatrixRow) *model.SentencingRangeRecord {
	return &model.SentencingRangeRecord{
		Culpability:       row.Culpability,
		Harm:              row.Harm,
		StartingPointText: row.StartingPointText,
		CategoryRangeText: row.CategoryRangeText,
	}
}
