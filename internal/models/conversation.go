package models

import "time"

// Sentiment classifications produced by the transcript analysis pipeline
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// ScriptScore bounds (0-100 adherence rating)
const (
	ScriptScoreMin = 0
	ScriptScoreMax = 100
)

// Conversation represents a single salesperson/customer conversation.
// Column names match the dashboard schema the front end was built against.
type Conversation struct {
	ID            int        `json:"id" gorm:"primaryKey"`
	SalespersonID int        `json:"salespersonId" gorm:"column:salesperson_id;not null;index"`
	CustomerID    string     `json:"customerId" gorm:"column:customer_id;not null"`
	CustomerName  *string    `json:"customerName" gorm:"column:customer_name"`
	StartedAt     time.Time  `json:"startedAt" gorm:"column:started_at;not null;index"`
	EndedAt       *time.Time `json:"endedAt" gorm:"column:ended_at"`
	Duration      *int       `json:"duration" gorm:"column:duration_minutes"`          // in minutes
	ResponseTime  *int       `json:"responseTime" gorm:"column:response_time_seconds"` // time to first reply, in seconds
	HasSale       bool       `json:"hasSale" gorm:"column:has_sale;not null;default:false"`
	SaleAmount    *float64   `json:"saleAmount" gorm:"column:sale_amount"`
	ScriptScore   *int       `json:"scriptScore" gorm:"column:script_score"` // 0-100
	Sentiment     *string    `json:"sentiment"`                              // positive, neutral, negative
	Transcript    *string    `json:"transcript"`
	LLMAnalysis   *string    `json:"llmAnalysis" gorm:"column:llm_analysis"` // JSON string, see analysis.go
}

func (Conversation) TableName() string {
	return "conversations"
}

// ConversationCreate is the payload for recording a new conversation
type ConversationCreate struct {
	SalespersonID int        `json:"salespersonId" validate:"required,gt=0"`
	CustomerID    string     `json:"customerId" validate:"required"`
	CustomerName  *string    `json:"customerName"`
	StartedAt     time.Time  `json:"startedAt" validate:"required"`
	EndedAt       *time.Time `json:"endedAt"`
	Duration      *int       `json:"duration" validate:"omitempty,gte=0"`
	ResponseTime  *int       `json:"responseTime" validate:"omitempty,gte=0"`
	HasSale       bool       `json:"hasSale"`
	SaleAmount    *float64   `json:"saleAmount" validate:"omitempty,gte=0"`
	ScriptScore   *int       `json:"scriptScore" validate:"omitempty,gte=0,lte=100"`
	Sentiment     *string    `json:"sentiment" validate:"omitempty,oneof=positive neutral negative"`
	Transcript    *string    `json:"transcript"`
	LLMAnalysis   *string    `json:"llmAnalysis"`
}
