package models

import (
	"fmt"
	"strings"
	"time"
)

// ConversationFilter narrows a conversation listing. All present predicates
// combine with logical AND; a nil filter (or nil field) means unbounded.
type ConversationFilter struct {
	SalespersonID *int
	StartDate     *time.Time // inclusive lower bound on StartedAt
	EndDate       *time.Time // inclusive upper bound on StartedAt
	HasSale       *bool
	MinScore      *int
	MaxScore      *int
}

// Matches reports whether a conversation passes every predicate present on
// the filter. A conversation with no script score fails any score bound.
func (f *ConversationFilter) Matches(c *Conversation) bool {
	if f == nil {
		return true
	}
	if f.SalespersonID != nil && c.SalespersonID != *f.SalespersonID {
		return false
	}
	if f.StartDate != nil && c.StartedAt.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && c.StartedAt.After(*f.EndDate) {
		return false
	}
	if f.HasSale != nil && c.HasSale != *f.HasSale {
		return false
	}
	if f.MinScore != nil && (c.ScriptScore == nil || *c.ScriptScore < *f.MinScore) {
		return false
	}
	if f.MaxScore != nil && (c.ScriptScore == nil || *c.ScriptScore > *f.MaxScore) {
		return false
	}
	return true
}

// Key returns a deterministic fingerprint of the filter, used as a cache key
func (f *ConversationFilter) Key() string {
	if f == nil {
		return "all"
	}
	parts := make([]string, 0, 6)
	if f.SalespersonID != nil {
		parts = append(parts, fmt.Sprintf("sp=%d", *f.SalespersonID))
	}
	if f.StartDate != nil {
		parts = append(parts, "from="+f.StartDate.UTC().Format(time.RFC3339))
	}
	if f.EndDate != nil {
		parts = append(parts, "to="+f.EndDate.UTC().Format(time.RFC3339))
	}
	if f.HasSale != nil {
		parts = append(parts, fmt.Sprintf("sale=%t", *f.HasSale))
	}
	if f.MinScore != nil {
		parts = append(parts, fmt.Sprintf("min=%d", *f.MinScore))
	}
	if f.MaxScore != nil {
		parts = append(parts, fmt.Sprintf("max=%d", *f.MaxScore))
	}
	if len(parts) == 0 {
		return "all"
	}
	return strings.Join(parts, ";")
}
