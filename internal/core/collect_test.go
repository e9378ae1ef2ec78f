package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlens/flowlens/internal/domain"
)

func TestCollect_DurationFromTimestamps(t *testing.T) {
	start := at(0)
	stop := at(250)
	record := &domain.ExecutionRecord{
		Nodes: map[string][]domain.RunPayload{
			"Fetch": {{StartedAt: &start, StoppedAt: &stop}},
		},
	}

	runs, err := Collect(record)

	require.NoError(t, err)
	require.Len(t, runs["Fetch"], 1)
	assert.Equal(t, ms(250), runs["Fetch"][0].Duration)
	assert.Equal(t, start, runs["Fetch"][0].StartedAt)
	assert.Equal(t, domain.RunStatusSuccess, runs["Fetch"][0].Status)
}

func TestCollect_DurationFieldUsedDirectly(t *testing.T) {
	record := &domain.ExecutionRecord{
		Nodes: map[string][]domain.RunPayload{
			"Fetch": {testPayload(0, 100, false)},
		},
	}

	runs, err := Collect(record)

	require.NoError(t, err)
	assert.Equal(t, ms(100), runs["Fetch"][0].Duration)
}

func TestCollect_NegativeDurationsClampedToZero(t *testing.T) {
	start := at(100)
	stop := at(40)
	negative := -ms(30)

	tests := []struct {
		name    string
		payload domain.RunPayload
	}{
		{
			name:    "end before start",
			payload: domain.RunPayload{StartedAt: &start, StoppedAt: &stop},
		},
		{
			name:    "negative duration field",
			payload: domain.RunPayload{StartedAt: &start, Duration: &negative},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &domain.ExecutionRecord{
				Nodes: map[string][]domain.RunPayload{"Fetch": {tt.payload}},
			}

			runs, err := Collect(record)

			require.NoError(t, err)
			assert.Equal(t, time.Duration(0), runs["Fetch"][0].Duration)
		})
	}
}

func TestCollect_MissingTimingDataIsMalformed(t *testing.T) {
	start := at(0)

	tests := []struct {
		name    string
		payload domain.RunPayload
	}{
		{
			name:    "no end time and no duration",
			payload: domain.RunPayload{StartedAt: &start},
		},
		{
			name:    "no start time",
			payload: domain.RunPayload{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &domain.ExecutionRecord{
				Nodes: map[string][]domain.RunPayload{
					"Transform": {testPayload(0, 5, false), tt.payload},
				},
			}

			runs, err := Collect(record)

			require.Error(t, err)
			assert.Nil(t, runs)
			assert.True(t, domain.IsMalformedInput(err))

			var malformed *domain.MalformedInputError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, "Transform", malformed.NodeName)
			assert.Equal(t, 1, malformed.RunIndex)
		})
	}
}

func TestCollect_EmptyRunListYieldsNoEntry(t *testing.T) {
	record := &domain.ExecutionRecord{
		Nodes: map[string][]domain.RunPayload{
			"Never": {},
			"Once":  {testPayload(0, 10, false)},
		},
	}

	runs, err := Collect(record)

	require.NoError(t, err)
	assert.NotContains(t, runs, "Never")
	assert.Contains(t, runs, "Once")
}

func TestCollect_StatusDefaultsToSuccess(t *testing.T) {
	record := &domain.ExecutionRecord{
		Nodes: map[string][]domain.RunPayload{
			"Loop": {
				testPayload(0, 10, false),
				testPayload(10, 10, true),
			},
		},
	}

	runs, err := Collect(record)

	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusSuccess, runs["Loop"][0].Status)
	assert.Equal(t, domain.RunStatusError, runs["Loop"][1].Status)
}

func TestCollect_RunIndicesFollowInputOrder(t *testing.T) {
	record := &domain.ExecutionRecord{
		Nodes: map[string][]domain.RunPayload{
			"Loop": {
				testPayload(20, 10, false),
				testPayload(0, 10, false),
				testPayload(10, 10, false),
			},
		},
	}

	runs, err := Collect(record)

	require.NoError(t, err)
	require.Len(t, runs["Loop"], 3)
	for i, run := range runs["Loop"] {
		assert.Equal(t, i, run.RunIndex)
		assert.Equal(t, "Loop", run.NodeName)
	}
	// Input order is preserved even when it disagrees with start order.
	assert.Equal(t, at(20), runs["Loop"][0].StartedAt)
	assert.Equal(t, at(0), runs["Loop"][1].StartedAt)
}

func TestCollect_NilAndEmptyRecords(t *testing.T) {
	runs, err := Collect(nil)
	require.NoError(t, err)
	assert.Empty(t, runs)

	runs, err = Collect(&domain.ExecutionRecord{})
	require.NoError(t, err)
	assert.Empty(t, runs)
}
