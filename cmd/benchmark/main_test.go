package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, int64(60*1000+1000+120), parseDuration("00:01:01.12"))
	assert.Equal(t, int64(60*60*1000+60*1000+1000+120), parseDuration("01:01:01.12"))
	assert.Equal(t, int64(60*1000+1000+120), parseDuration("1:01.12"))
	assert.Equal(t, int64(120), parseDuration("0:00.12"))
	assert.Equal(t, int64(120), parseDuration("00:00:00.12"))
}

func TestParseTimeReport(t *testing.T) {
	assert.Equal(t, int64(2500), parseDurationLine("\tElapsed (wall clock) time (h:mm:ss or m:ss): 0:02.50"))
	assert.InDelta(t, 2.0, parseMemoryLine("\tMaximum resident set size (kbytes): 2048"), 0.001)
	assert.Equal(t, int64(187), parseCpuPercentageLine("\tPercent of CPU this job got: 187%"))
}

func TestGetTestsSkipsInvalidFixtures(t *testing.T) {
	tests := getTests()

	names := make(map[string]TestMetadata)
	for _, test := range tests {
		names[test.Name] = test
	}

	require.Contains(t, names, puzzlesDirectory+"dominoes.json")
	assert.NotContains(t, names, puzzlesDirectory+"negative-count.json")
	assert.Equal(t, TestMetadata{Name: "soma", Preset: true, Cells: 27, Pieces: 7, Kinds: 7}, names["soma"])
}

func TestArguments(t *testing.T) {
	args := arguments(checked, TestMetadata{Name: "soma", Preset: true})

	assert.Contains(t, args, "-check")
	assert.Subset(t, args, []string{"-preset", "soma", "-solver", "gini"})
}
