package monitoring

import (
	"strings"
	"testing"
	"time"
)

func TestPhaseTimerRecords(t *testing.T) {
	stats := NewFrameStats()

	timer := stats.StartUpdate()
	time.Sleep(2 * time.Millisecond)
	timer.End()

	if got := stats.updateNanos.Load(); got == 0 {
		t.Error("Update timing should be recorded after End")
	}
}

func TestMovingAverageSmoothing(t *testing.T) {
	stats := NewFrameStats()

	// Seed the average, then fold in a much larger sample; the EMA must land
	// between the two rather than jumping to the new value.
	stats.updateNanos.Store(1000)
	timer := stats.StartUpdate()
	start := time.Now()
	time.Sleep(5 * time.Millisecond)
	timer.End()
	elapsed := uint64(time.Since(start).Nanoseconds())

	got := stats.updateNanos.Load()
	if got <= 1000 {
		t.Errorf("Average should rise after a slow frame, got %d", got)
	}
	if got >= elapsed {
		t.Errorf("Average %d should smooth the %dns spike", got, elapsed)
	}
}

func TestSummaryFormat(t *testing.T) {
	stats := NewFrameStats()
	stats.StartUpdate().End()
	stats.StartRender().End()

	s := stats.Summary()
	for _, field := range []string{"fps", "update", "render", "ms"} {
		if !strings.Contains(s, field) {
			t.Errorf("Summary %q missing %q", s, field)
		}
	}
}
