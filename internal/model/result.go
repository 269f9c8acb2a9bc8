package model

// SentencingRangeRecord is the matched starting-point/range text for a
// culpability/harm pair. It is a lookup result, never derived data.
type SentencingRangeRecord struct {
	Culpability       string `json:"culpability"`
	Harm              string `json:"harm"`
	StartingPointText string `json:"starting_point_text"`
	CategoryRangeText string `json:"category_range_text"`
}

// SentenceCalculationResult is the single aggregate a calculation produces.
// Trace is append-only and ordered by rule application.
type SentenceCalculationResult struct {
	OffenceID    string       `json:"offence_id"`
	OffenceName  string       `json:"offence_name"`
	SentenceType SentenceType `json:"sentence_type"`

	PrePleaTermMonths  *float64 `json:"pre_plea_term_months"`
	PostPleaTermMonths *float64 `json:"post_plea_term_months"`

	MinimumSentenceTriggered     bool     `json:"minimum_sentence_triggered"`
	MinimumFloorPrePleaMonths    *float64 `json:"minimum_floor_pre_plea_months"`
	MinimumFloorPostPleaMonths   *float64 `json:"minimum_floor_post_plea_months"`
	ReleaseFraction              *float64 `json:"release_fraction"`
	EstimatedTimeInCustodyMonths *float64 `json:"estimated_time_in_custody_months"`
	VictimSurchargeGBP           float64  `json:"victim_surcharge_gbp"`

	MatchedRange *SentencingRangeRecord `json:"matched_range"`
	Warnings     []string               `json:"warnings"`
	Trace        []string               `json:"trace"`
}

// CalculationMetadata wraps a calculation with identifiers and timing for the
// transport layer.
type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata        `json:"calculation_metadata"`
	CalculationResult   *SentenceCalculationResult `json:"calculation_result"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
