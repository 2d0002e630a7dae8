package services

import (
	"github.com/foco-sales/foco-backend/internal/models"
	"github.com/foco-sales/foco-backend/internal/storage"
)

// Threshold a script score must exceed for a conversation to count as a
// qualified lead when its sentiment is not positive.
const qualifiedScoreThreshold = 70

// MetricsService computes performance rollups over the record store
type MetricsService struct {
	store storage.Store
}

// NewMetricsService creates a new metrics service
func NewMetricsService(store storage.Store) *MetricsService {
	return &MetricsService{
		store: store,
	}
}

// ComputeMetrics aggregates the filtered conversation set into an overview
// plus one row per registered salesperson. The filter narrows conversations
// only; the salesperson roster is always complete, so salespeople with no
// matching conversations appear with all-zero stats.
func (s *MetricsService) ComputeMetrics(filter *models.ConversationFilter) (*models.PerformanceMetrics, error) {
	conversations, err := s.store.GetConversations(filter)
	if err != nil {
		return nil, err
	}
	salespeople, err := s.store.GetSalespeople()
	if err != nil {
		return nil, err
	}

	overview := computeOverview(conversations)

	rows := make([]models.SalespersonPerformance, 0, len(salespeople))
	for _, person := range salespeople {
		personConvs := make([]*models.Conversation, 0)
		for _, c := range conversations {
			if c.SalespersonID == person.ID {
				personConvs = append(personConvs, c)
			}
		}

		sales := 0
		var revenue, responseSum, scoreSum, durationSum float64
		for _, c := range personConvs {
			if c.HasSale {
				sales++
			}
			revenue += floatOrZero(c.SaleAmount)
			responseSum += intOrZero(c.ResponseTime)
			scoreSum += intOrZero(c.ScriptScore)
			durationSum += intOrZero(c.Duration)
		}

		rows = append(rows, models.SalespersonPerformance{
			Salesperson:        *person,
			ConversationsCount: len(personConvs),
			SalesCount:         sales,
			Revenue:            revenue,
			ConversionRate:     ratio(sales, len(personConvs)),
			AvgResponseTime:    mean(responseSum, len(personConvs)),
			AvgScriptScore:     mean(scoreSum, len(personConvs)),
			AvgDuration:        mean(durationSum, len(personConvs)),
		})
	}

	return &models.PerformanceMetrics{
		Overview:      overview,
		Salespeople:   rows,
		Conversations: conversations,
	}, nil
}

func computeOverview(conversations []*models.Conversation) models.Overview {
	total := len(conversations)

	sales := 0
	qualified := 0
	var revenue, responseSum, scoreSum float64
	for _, c := range conversations {
		if c.HasSale {
			sales++
		}
		if isQualifiedLead(c) {
			qualified++
		}
		revenue += floatOrZero(c.SaleAmount)
		responseSum += intOrZero(c.ResponseTime)
		scoreSum += intOrZero(c.ScriptScore)
	}

	return models.Overview{
		TotalRevenue:       revenue,
		TotalSales:         sales,
		TotalConversations: total,
		ConversionRate:     ratio(sales, total),
		QualifiedLeads:     qualified,
		AvgResponseTime:    mean(responseSum, total),
		AvgScriptScore:     mean(scoreSum, total),
	}
}

// isQualifiedLead marks a conversation as a viable sales opportunity:
// positive sentiment, or a script score strictly above the threshold.
func isQualifiedLead(c *models.Conversation) bool {
	if c.Sentiment != nil && *c.Sentiment == models.SentimentPositive {
		return true
	}
	return c.ScriptScore != nil && *c.ScriptScore > qualifiedScoreThreshold
}

// ratio returns part/whole as a percentage, 0 for an empty whole
func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// mean returns sum/n, 0 for an empty n
func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOrZero(v *int) float64 {
	if v == nil {
		return 0
	}
	return float64(*v)
}
