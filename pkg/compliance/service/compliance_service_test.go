package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(statuses ...string) []Entry {
	out := make([]Entry, len(statuses))
	for i, s := range statuses {
		out[i] = Entry{Status: s}
	}
	return out
}

func TestSummarize_Counts(t *testing.T) {
	s := Summarize(entries("done", "done", "missed", "pending", "upcoming", "upcoming"))
	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 2, s.Done)
	assert.Equal(t, 1, s.Missed)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 2, s.Upcoming)
	require.NotNil(t, s.ComplianceRate)
	assert.Equal(t, 67, *s.ComplianceRate, "pending/upcoming stay out of the denominator")
}

func TestSummarize_NilRateWithoutCountables(t *testing.T) {
	assert.Nil(t, Summarize(nil).ComplianceRate)
	assert.Nil(t, Summarize(entries("pending", "upcoming")).ComplianceRate)
}

func TestSummarize_Rounding(t *testing.T) {
	s := Summarize(entries("done", "missed", "missed")) // 33.33...
	require.NotNil(t, s.ComplianceRate)
	assert.Equal(t, 33, *s.ComplianceRate)

	s = Summarize(entries("done", "done", "missed")) // 66.66...
	require.NotNil(t, s.ComplianceRate)
	assert.Equal(t, 67, *s.ComplianceRate)

	s = Summarize(entries("missed"))
	require.NotNil(t, s.ComplianceRate)
	assert.Equal(t, 0, *s.ComplianceRate)
}
