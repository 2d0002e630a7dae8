package storage

import (
	"fmt"
	"time"

	"github.com/foco-sales/foco-backend/internal/models"
)

func ptr[T any](v T) *T {
	return &v
}

// SeedDemoData loads the demo dataset used for local dashboard development.
// It is a no-op when the store already has salespeople.
func SeedDemoData(s Store) error {
	existing, err := s.GetSalespeople()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	people := []*models.SalespersonCreate{
		{Name: "Maria Silva", Email: "maria@company.com", Avatar: ptr("MS")},
		{Name: "Joao Oliveira", Email: "joao@company.com", Avatar: ptr("JO")},
		{Name: "Ana Santos", Email: "ana@company.com", Avatar: ptr("AS")},
		{Name: "Pedro Costa", Email: "pedro@company.com", Avatar: ptr("PC")},
	}
	ids := make([]int, 0, len(people))
	for _, p := range people {
		created, err := s.CreateSalesperson(p)
		if err != nil {
			return fmt.Errorf("failed to seed salesperson %s: %w", p.Name, err)
		}
		ids = append(ids, created.ID)
	}

	day := time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC)
	at := func(hour, min int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
	}

	conversations := []*models.ConversationCreate{
		// Maria: top performer
		{
			SalespersonID: ids[0], CustomerID: "cust_001", CustomerName: ptr("Ana Silva"),
			StartedAt: at(14, 30), EndedAt: ptr(at(14, 40)), Duration: ptr(10),
			ResponseTime: ptr(125), HasSale: true, SaleAmount: ptr(520.0),
			ScriptScore: ptr(87), Sentiment: ptr(models.SentimentPositive),
			Transcript: ptr("Full conversation transcript..."),
			LLMAnalysis: ptr(`{"strengths":["Built great initial rapport","Fast and accurate replies"],"improvements":["Use more social proof","Handle objections before the offer"],"steps":{"greeting":true,"videoPitch":true,"objectionHandling":false,"alternatives":true,"socialProof":false}}`),
		},
		{
			SalespersonID: ids[0], CustomerID: "cust_012", CustomerName: ptr("Carlos Mendes"),
			StartedAt: at(15, 20), EndedAt: ptr(at(15, 35)), Duration: ptr(15),
			ResponseTime: ptr(90), HasSale: true, SaleAmount: ptr(780.0),
			ScriptScore: ptr(92), Sentiment: ptr(models.SentimentPositive),
			Transcript: ptr("Excellent conversation with a close..."),
			LLMAnalysis: ptr(`{"strengths":["Excellent use of social proof","Handled objections perfectly"],"improvements":["Could pick up the pace a little"],"steps":{"greeting":true,"videoPitch":true,"objectionHandling":true,"alternatives":true,"socialProof":true}}`),
		},
		{
			SalespersonID: ids[0], CustomerID: "cust_013", CustomerName: ptr("Beatriz Santos"),
			StartedAt: at(16, 45), EndedAt: ptr(at(17, 0)), Duration: ptr(15),
			ResponseTime: ptr(110), HasSale: false,
			ScriptScore: ptr(85), Sentiment: ptr(models.SentimentNeutral),
			Transcript: ptr("Customer was not ready to buy..."),
			LLMAnalysis: ptr(`{"strengths":["Stayed professional","Followed the script correctly"],"improvements":["Could have pushed urgency harder"],"steps":{"greeting":true,"videoPitch":true,"objectionHandling":true,"alternatives":true,"socialProof":false}}`),
		},
		// Joao: needs improvement
		{
			SalespersonID: ids[1], CustomerID: "cust_002", CustomerName: ptr("Roberto Lima"),
			StartedAt: at(12, 15), EndedAt: ptr(at(12, 30)), Duration: ptr(15),
			ResponseTime: ptr(260), HasSale: false,
			ScriptScore: ptr(45), Sentiment: ptr(models.SentimentNegative),
			Transcript: ptr("Conversation without a sale..."),
			LLMAnalysis: ptr(`{"strengths":["Persistent"],"improvements":["Improve response time","Follow the script more closely"],"steps":{"greeting":true,"videoPitch":false,"objectionHandling":false,"alternatives":true,"socialProof":false}}`),
		},
		{
			SalespersonID: ids[1], CustomerID: "cust_014", CustomerName: ptr("Fernanda Costa"),
			StartedAt: at(13, 30), EndedAt: ptr(at(13, 50)), Duration: ptr(20),
			ResponseTime: ptr(180), HasSale: false,
			ScriptScore: ptr(52), Sentiment: ptr(models.SentimentNeutral),
			Transcript: ptr("Customer interested but did not close..."),
			LLMAnalysis: ptr(`{"strengths":["Kept the customer engaged","Good product explanation"],"improvements":["Did not offer the video call","Missed a closing opportunity"],"steps":{"greeting":true,"videoPitch":false,"objectionHandling":false,"alternatives":false,"socialProof":false}}`),
		},
		// Ana: good performer
		{
			SalespersonID: ids[2], CustomerID: "cust_015", CustomerName: ptr("Diego Martins"),
			StartedAt: at(10, 20), EndedAt: ptr(at(10, 35)), Duration: ptr(15),
			ResponseTime: ptr(95), HasSale: true, SaleAmount: ptr(650.0),
			ScriptScore: ptr(78), Sentiment: ptr(models.SentimentPositive),
			Transcript: ptr("Good conversation with a close..."),
			LLMAnalysis: ptr(`{"strengths":["Quick to respond","Good closing technique"],"improvements":["Could use more social proof","More product detail"],"steps":{"greeting":true,"videoPitch":true,"objectionHandling":true,"alternatives":true,"socialProof":false}}`),
		},
		{
			SalespersonID: ids[2], CustomerID: "cust_016", CustomerName: ptr("Juliana Pereira"),
			StartedAt: at(11, 10), EndedAt: ptr(at(11, 25)), Duration: ptr(15),
			ResponseTime: ptr(140), HasSale: false,
			ScriptScore: ptr(72), Sentiment: ptr(models.SentimentNeutral),
			Transcript: ptr("Customer had questions about delivery..."),
			LLMAnalysis: ptr(`{"strengths":["Patient with questions","Explained the process well"],"improvements":["Could have offered a discount","No urgency used"],"steps":{"greeting":true,"videoPitch":true,"objectionHandling":false,"alternatives":true,"socialProof":false}}`),
		},
		// Pedro: average
		{
			SalespersonID: ids[3], CustomerID: "cust_017", CustomerName: ptr("Marcos Oliveira"),
			StartedAt: at(9, 15), EndedAt: ptr(at(9, 30)), Duration: ptr(15),
			ResponseTime: ptr(200), HasSale: true, SaleAmount: ptr(450.0),
			ScriptScore: ptr(65), Sentiment: ptr(models.SentimentPositive),
			Transcript: ptr("Standard conversation with a close..."),
			LLMAnalysis: ptr(`{"strengths":["Managed to close","Kept the customer interested"],"improvements":["High response time","Script score can improve"],"steps":{"greeting":true,"videoPitch":false,"objectionHandling":true,"alternatives":false,"socialProof":false}}`),
		},
	}

	for _, c := range conversations {
		if _, err := s.CreateConversation(c); err != nil {
			return fmt.Errorf("failed to seed conversation for customer %s: %w", c.CustomerID, err)
		}
	}
	return nil
}
