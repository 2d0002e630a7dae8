package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foco-sales/foco-backend/internal/models"
	"github.com/foco-sales/foco-backend/internal/storage"
)

func ptr[T any](v T) *T {
	return &v
}

func seededService(t *testing.T) (*MetricsService, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	require.NoError(t, storage.SeedDemoData(store))
	return NewMetricsService(store), store
}

func TestComputeMetricsOverview(t *testing.T) {
	svc, _ := seededService(t)

	metrics, err := svc.ComputeMetrics(nil)
	require.NoError(t, err)

	overview := metrics.Overview
	assert.Equal(t, 8, overview.TotalConversations)
	assert.Equal(t, 4, overview.TotalSales)
	assert.InDelta(t, 2400.0, overview.TotalRevenue, 0.001)
	assert.InDelta(t, 50.0, overview.ConversionRate, 0.001)
	// 4 positive-sentiment conversations plus two neutral ones scoring above 70
	assert.Equal(t, 6, overview.QualifiedLeads)
	assert.InDelta(t, 150.0, overview.AvgResponseTime, 0.001)
	assert.InDelta(t, 72.0, overview.AvgScriptScore, 0.001)

	assert.LessOrEqual(t, overview.TotalSales, overview.TotalConversations)
	assert.GreaterOrEqual(t, overview.ConversionRate, 0.0)
	assert.LessOrEqual(t, overview.ConversionRate, 100.0)
}

func TestComputeMetricsPerSalesperson(t *testing.T) {
	svc, _ := seededService(t)

	metrics, err := svc.ComputeMetrics(nil)
	require.NoError(t, err)
	require.Len(t, metrics.Salespeople, 4)

	maria := metrics.Salespeople[0]
	assert.Equal(t, "Maria Silva", maria.Name)
	assert.Equal(t, 3, maria.ConversationsCount)
	assert.Equal(t, 2, maria.SalesCount)
	assert.InDelta(t, 1300.0, maria.Revenue, 0.001)
	assert.InDelta(t, 200.0/3.0, maria.ConversionRate, 0.001)
	assert.InDelta(t, 325.0/3.0, maria.AvgResponseTime, 0.001)
	assert.InDelta(t, 88.0, maria.AvgScriptScore, 0.001)
	assert.InDelta(t, 40.0/3.0, maria.AvgDuration, 0.001)

	// Per-salesperson counts sum to the overview total
	sum := 0
	for _, row := range metrics.Salespeople {
		sum += row.ConversationsCount
	}
	assert.Equal(t, metrics.Overview.TotalConversations, sum)
}

func TestComputeMetricsCountsSumUnderNonPersonFilter(t *testing.T) {
	svc, _ := seededService(t)

	metrics, err := svc.ComputeMetrics(&models.ConversationFilter{HasSale: ptr(true)})
	require.NoError(t, err)

	sum := 0
	for _, row := range metrics.Salespeople {
		sum += row.ConversationsCount
	}
	assert.Equal(t, metrics.Overview.TotalConversations, sum)
	assert.Equal(t, 4, sum)
}

func TestComputeMetricsEmptyStore(t *testing.T) {
	store := storage.NewMemoryStore()
	_, err := store.CreateSalesperson(&models.SalespersonCreate{Name: "Maria Silva", Email: "maria@company.com"})
	require.NoError(t, err)
	svc := NewMetricsService(store)

	metrics, err := svc.ComputeMetrics(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, metrics.Overview.TotalConversations)
	assert.Zero(t, metrics.Overview.ConversionRate)
	assert.Zero(t, metrics.Overview.AvgResponseTime)
	assert.Zero(t, metrics.Overview.AvgScriptScore)

	// Every registered salesperson still appears, with all-zero stats
	require.Len(t, metrics.Salespeople, 1)
	row := metrics.Salespeople[0]
	assert.Zero(t, row.ConversationsCount)
	assert.Zero(t, row.SalesCount)
	assert.Zero(t, row.Revenue)
	assert.Zero(t, row.ConversionRate)
	assert.Zero(t, row.AvgResponseTime)
	assert.Zero(t, row.AvgScriptScore)
	assert.Zero(t, row.AvgDuration)
}

func TestComputeMetricsIsIdempotent(t *testing.T) {
	svc, _ := seededService(t)

	first, err := svc.ComputeMetrics(&models.ConversationFilter{SalespersonID: ptr(1)})
	require.NoError(t, err)
	second, err := svc.ComputeMetrics(&models.ConversationFilter{SalespersonID: ptr(1)})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeMetricsMinScoreScenario(t *testing.T) {
	store := storage.NewMemoryStore()
	_, err := store.CreateSalesperson(&models.SalespersonCreate{Name: "Maria Silva", Email: "maria@company.com"})
	require.NoError(t, err)

	base := time.Date(2025, time.January, 11, 10, 0, 0, 0, time.UTC)
	scores := []*int{ptr(90), ptr(50), nil}
	for i, score := range scores {
		_, err := store.CreateConversation(&models.ConversationCreate{
			SalespersonID: 1,
			CustomerID:    "cust_test",
			StartedAt:     base.Add(time.Duration(i) * time.Minute),
			ScriptScore:   score,
		})
		require.NoError(t, err)
	}

	svc := NewMetricsService(store)
	metrics, err := svc.ComputeMetrics(&models.ConversationFilter{MinScore: ptr(70)})
	require.NoError(t, err)

	require.Len(t, metrics.Conversations, 1)
	assert.Equal(t, 90, *metrics.Conversations[0].ScriptScore)
	assert.Equal(t, 1, metrics.Overview.QualifiedLeads)
}

func TestQualifiedLeadRule(t *testing.T) {
	tests := []struct {
		name      string
		sentiment *string
		score     *int
		qualified bool
	}{
		{"positive sentiment, no score", ptr(models.SentimentPositive), nil, true},
		{"positive sentiment, low score", ptr(models.SentimentPositive), ptr(10), true},
		{"no sentiment, score above threshold", nil, ptr(71), true},
		{"neutral sentiment, score at threshold", ptr(models.SentimentNeutral), ptr(70), false},
		{"negative sentiment, no score", ptr(models.SentimentNegative), nil, false},
		{"nothing set", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &models.Conversation{Sentiment: tt.sentiment, ScriptScore: tt.score}
			assert.Equal(t, tt.qualified, isQualifiedLead(c))
		})
	}
}

func TestRevenueCountsOnlyRecordedAmounts(t *testing.T) {
	store := storage.NewMemoryStore()
	_, err := store.CreateSalesperson(&models.SalespersonCreate{Name: "Maria Silva", Email: "maria@company.com"})
	require.NoError(t, err)

	base := time.Date(2025, time.January, 11, 10, 0, 0, 0, time.UTC)
	amounts := []*float64{ptr(650.0), ptr(450.0), nil, nil, nil}
	for i, amount := range amounts {
		_, err := store.CreateConversation(&models.ConversationCreate{
			SalespersonID: 1,
			CustomerID:    "cust_test",
			StartedAt:     base.Add(time.Duration(i) * time.Minute),
			HasSale:       true,
			SaleAmount:    amount,
		})
		require.NoError(t, err)
	}

	svc := NewMetricsService(store)
	metrics, err := svc.ComputeMetrics(&models.ConversationFilter{HasSale: ptr(true)})
	require.NoError(t, err)

	assert.Equal(t, 5, metrics.Overview.TotalConversations)
	assert.InDelta(t, 1100.0, metrics.Overview.TotalRevenue, 0.001)
}

func TestRatioAndMeanGuards(t *testing.T) {
	assert.Zero(t, ratio(0, 0))
	assert.Zero(t, mean(0, 0))
	assert.InDelta(t, 50.0, ratio(1, 2), 0.001)
	assert.InDelta(t, 2.5, mean(5, 2), 0.001)
}
