package rules

import (
	"math"
	"time"

	"sentence-engine/internal/model"
)

// Guilty-plea reduction factors by plea stage.
var pleaFactors = map[model.PleaStage]float64{
	model.PleaFirstStage:                 2.0 / 3.0,
	model.PleaAfterFirstStageBeforeTrial: 3.0 / 4.0,
	model.PleaDayOfTrial:                 9.0 / 10.0,
	model.PleaAfterTrialBegins:           19.0 / 20.0,
	model.PleaNotGuilty:                  1.0,
}

// PleaFactor returns the discount factor for a plea stage. Unknown stages get
// no discount.
func PleaFactor(stage model.PleaStage) float64 {
	if f, ok := pleaFactors[stage]; ok {
		return f
	}
	return 1.0
}

// SentenceAfterPlea derives the post-plea term from the pre-plea term. A nil
// pre-plea term propagates as nil.
func SentenceAfterPlea(prePleaTermMonths *float64, stage model.PleaStage) *float64 {
	if prePleaTermMonths == nil {
		return nil
	}
	v := round2(*prePleaTermMonths * PleaFactor(stage))
	return &v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func fptr(v float64) *float64 {
	return &v
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
