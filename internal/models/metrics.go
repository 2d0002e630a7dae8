package models

// Overview holds team-wide rollup metrics over a filtered conversation set
type Overview struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalSales         int     `json:"totalSales"`
	TotalConversations int     `json:"totalConversations"`
	ConversionRate     float64 `json:"conversionRate"` // percentage, 0 for empty sets
	QualifiedLeads     int     `json:"qualifiedLeads"`
	AvgResponseTime    float64 `json:"avgResponseTime"` // seconds
	AvgScriptScore     float64 `json:"avgScriptScore"`
}

// SalespersonPerformance is one leaderboard row: the salesperson plus their
// stats restricted to the filtered conversation set
type SalespersonPerformance struct {
	Salesperson
	ConversationsCount int     `json:"conversationsCount"`
	SalesCount         int     `json:"salesCount"`
	Revenue            float64 `json:"revenue"`
	ConversionRate     float64 `json:"conversionRate"`
	AvgResponseTime    float64 `json:"avgResponseTime"`
	AvgScriptScore     float64 `json:"avgScriptScore"`
	AvgDuration        float64 `json:"avgDuration"` // minutes
}

// PerformanceMetrics is the combined payload served to the dashboard
type PerformanceMetrics struct {
	Overview      Overview                 `json:"overview"`
	Salespeople   []SalespersonPerformance `json:"salespeople"`
	Conversations []*Conversation          `json:"conversations"`
}
