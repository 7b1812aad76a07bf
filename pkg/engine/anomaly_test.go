package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpulse/finpulse/pkg/domain"
)

func TestDetectSpendingAnomalies_ExactThresholdFlags(t *testing.T) {
	transactions := []*domain.Transaction{
		expense("food", 1300, testNow),
		expense("food", 1000, monthsAgo(testNow, 1)),
		expense("food", 1000, monthsAgo(testNow, 2)),
		expense("food", 1000, monthsAgo(testNow, 3)),
	}

	anomalies := DetectSpendingAnomalies(transactions, DefaultAnomalyThreshold, testNow)

	require.Len(t, anomalies, 1)
	a := anomalies[0]
	assert.Equal(t, "food", a.Category)
	assert.Equal(t, 30, a.ChangePercent)
	assert.True(t, a.IsIncrease)
	assert.Equal(t, SeverityLow, a.Severity)
	assert.True(t, a.Average.Equal(d(1000)))
	assert.True(t, a.CurrentMonth.Equal(d(1300)))
}

func TestDetectSpendingAnomalies_BelowThresholdIgnored(t *testing.T) {
	transactions := []*domain.Transaction{
		expense("food", 1299, testNow),
		expense("food", 1000, monthsAgo(testNow, 1)),
		expense("food", 1000, monthsAgo(testNow, 2)),
		expense("food", 1000, monthsAgo(testNow, 3)),
	}

	assert.Empty(t, DetectSpendingAnomalies(transactions, DefaultAnomalyThreshold, testNow))
}

func TestDetectSpendingAnomalies_NoBaselineSkipped(t *testing.T) {
	// A category seen only in the current month has nothing to deviate
	// from and must not be flagged.
	transactions := []*domain.Transaction{
		expense("gadgets", 50_000, testNow),
	}

	assert.Empty(t, DetectSpendingAnomalies(transactions, DefaultAnomalyThreshold, testNow))
}

func TestDetectSpendingAnomalies_ZeroMonthsExcludedFromBaseline(t *testing.T) {
	// Only two of the three trailing months have spend; the mean divides
	// by two, not three.
	transactions := []*domain.Transaction{
		expense("travel", 3000, testNow),
		expense("travel", 1000, monthsAgo(testNow, 1)),
		expense("travel", 2000, monthsAgo(testNow, 3)),
	}

	anomalies := DetectSpendingAnomalies(transactions, DefaultAnomalyThreshold, testNow)

	require.Len(t, anomalies, 1)
	assert.True(t, anomalies[0].Average.Equal(d(1500)))
	assert.Equal(t, 100, anomalies[0].ChangePercent)
	assert.Equal(t, SeverityHigh, anomalies[0].Severity)
}

func TestDetectSpendingAnomalies_Decrease(t *testing.T) {
	transactions := []*domain.Transaction{
		expense("dining", 400, testNow),
		expense("dining", 1000, monthsAgo(testNow, 1)),
		expense("dining", 1000, monthsAgo(testNow, 2)),
	}

	anomalies := DetectSpendingAnomalies(transactions, DefaultAnomalyThreshold, testNow)

	require.Len(t, anomalies, 1)
	assert.Equal(t, -60, anomalies[0].ChangePercent)
	assert.False(t, anomalies[0].IsIncrease)
	assert.Equal(t, SeverityMedium, anomalies[0].Severity)
}

func TestDetectSpendingAnomalies_SortedByMagnitude(t *testing.T) {
	transactions := []*domain.Transaction{
		expense("food", 1400, testNow),
		expense("food", 1000, monthsAgo(testNow, 1)),
		expense("travel", 3000, testNow),
		expense("travel", 1000, monthsAgo(testNow, 1)),
	}

	anomalies := DetectSpendingAnomalies(transactions, DefaultAnomalyThreshold, testNow)

	require.Len(t, anomalies, 2)
	assert.Equal(t, "travel", anomalies[0].Category)
	assert.Equal(t, "food", anomalies[1].Category)
}

func TestDetectSpendingAnomalies_NonPositiveThresholdUsesDefault(t *testing.T) {
	transactions := []*domain.Transaction{
		expense("food", 1100, testNow), // +10%, below the default 30
		expense("food", 1000, monthsAgo(testNow, 1)),
	}

	assert.Empty(t, DetectSpendingAnomalies(transactions, 0, testNow))
}
