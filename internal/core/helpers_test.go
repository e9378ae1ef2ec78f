package core

import (
	"time"

	"github.com/flowlens/flowlens/internal/domain"
)

var testBase = time.Date(2024, 5, 14, 9, 30, 0, 0, time.UTC)

func at(ms int64) time.Time {
	return testBase.Add(time.Duration(ms) * time.Millisecond)
}

func ms(d int64) time.Duration {
	return time.Duration(d) * time.Millisecond
}

func testRun(name string, index int, startMS, durationMS int64) domain.NodeRun {
	return domain.NodeRun{
		NodeName:  name,
		RunIndex:  index,
		StartedAt: at(startMS),
		Duration:  ms(durationMS),
		Status:    domain.RunStatusSuccess,
	}
}

func testPayload(startMS, durationMS int64, failed bool) domain.RunPayload {
	start := at(startMS)
	duration := ms(durationMS)
	return domain.RunPayload{
		StartedAt: &start,
		Duration:  &duration,
		Failed:    failed,
	}
}
