package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentence-engine/internal/model"
)

func sptr(s string) *string { return &s }

var matrixFixture = []model.SentencingMatrixRow{
	{Culpability: "Culpability A", Harm: "Category 1", StartingPointText: "4 years", CategoryRangeText: "3-6 years"},
	{Culpability: "Culpability A", Harm: "Category 2", StartingPointText: "2 years", CategoryRangeText: "1-4 years"},
	{Culpability: "Culpability B", Harm: "Category 1", StartingPointText: "1 year", CategoryRangeText: "26 weeks - 2 years"},
}

func TestPickRangeExactMatch(t *testing.T) {
	got := PickSentencingRange(sptr("culpability a"), sptr("CATEGORY 2"), matrixFixture)
	require.NotNil(t, got)
	assert.Equal(t, "2 years", got.StartingPointText)
	assert.Equal(t, "Culpability A", got.Culpability)
}

func TestPickRangeTrimsWhitespace(t *testing.T) {
	got := PickSentencingRange(sptr("  Culpability B "), sptr(" Category 1"), matrixFixture)
	require.NotNil(t, got)
	assert.Equal(t, "1 year", got.StartingPointText)
}

func TestPickRangeContainmentFallback(t *testing.T) {
	got := PickSentencingRange(sptr("B"), sptr("1"), matrixFixture)
	require.NotNil(t, got)
	assert.Equal(t, "Culpability B", got.Culpability)

	// First containment match wins.
	got = PickSentencingRange(sptr("A"), sptr("Category"), matrixFixture)
	require.NotNil(t, got)
	assert.Equal(t, "Category 1", got.Harm)
}

func TestPickRangeAbsentLabels(t *testing.T) {
	assert.Nil(t, PickSentencingRange(nil, sptr("Category 1"), matrixFixture))
	assert.Nil(t, PickSentencingRange(sptr("Culpability A"), nil, matrixFixture))
	assert.Nil(t, PickSentencingRange(sptr(""), sptr("Category 1"), matrixFixture))
}

func TestPickRangeNoMatch(t *testing.T) {
	assert.Nil(t, PickSentencingRange(sptr("Culpability Z"), sptr("Category 9"), matrixFixture))
	assert.Nil(t, PickSentencingRange(sptr("Culpability A"), sptr("Category 1"), nil))
}
