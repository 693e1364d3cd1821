package util

import (
	"math"
	"testing"
)

func TestNewStats(t *testing.T) {
	stats := NewStats([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	if stats.Mean != 5 {
		t.Errorf("expected mean 5, got %f", stats.Mean)
	}
	if stats.Min != 2 || stats.Max != 9 {
		t.Errorf("expected min 2 max 9, got %f %f", stats.Min, stats.Max)
	}
	if math.Abs(stats.StdDeviation-2) > 1e-9 {
		t.Errorf("expected stddev 2, got %f", stats.StdDeviation)
	}
	if math.Abs(stats.MinMaxRatio-2.0/9.0) > 1e-9 {
		t.Errorf("unexpected min/max ratio %f", stats.MinMaxRatio)
	}
}

func TestNewStatsEmpty(t *testing.T) {
	if got := NewStats(nil); got != (Stats{}) {
		t.Errorf("expected zero stats for empty input, got %+v", got)
	}
}

func TestNewDistributionStats(t *testing.T) {
	// perfectly even distribution scores 1.0
	even := NewDistributionStats([]float64{3, 3, 3, 3})
	if math.Abs(even.DistributionQuality-1.0) > 1e-9 {
		t.Errorf("expected quality 1.0 for even sizes, got %f", even.DistributionQuality)
	}

	uneven := NewDistributionStats([]float64{1, 100})
	if uneven.DistributionQuality >= even.DistributionQuality {
		t.Errorf("uneven distribution not penalized: %f", uneven.DistributionQuality)
	}
}
