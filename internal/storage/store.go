package storage

import (
	"errors"
	"fmt"

	"github.com/foco-sales/foco-backend/internal/models"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// ErrInvalid is returned when an insert violates a data-quality invariant
var ErrInvalid = errors.New("invalid record")

// Store defines the interface for storage operations. The active store is
// constructed once in main and passed to handlers; there is no ambient
// global instance.
type Store interface {
	// Salesperson operations
	GetSalespeople() ([]*models.Salesperson, error)
	GetSalesperson(id int) (*models.Salesperson, error)
	CreateSalesperson(data *models.SalespersonCreate) (*models.Salesperson, error)

	// Conversation operations
	GetConversations(filter *models.ConversationFilter) ([]*models.Conversation, error)
	GetConversation(id int) (*models.Conversation, error)
	CreateConversation(data *models.ConversationCreate) (*models.Conversation, error)

	// Script step operations
	GetScriptSteps(conversationID int) ([]*models.ScriptStep, error)
	CreateScriptStep(data *models.ScriptStepCreate) (*models.ScriptStep, error)
}

// checkConversationCreate enforces the insert-time invariants shared by both
// store implementations. Referential integrity against the salesperson
// roster is checked separately since it needs store access.
func checkConversationCreate(data *models.ConversationCreate) error {
	if data.StartedAt.IsZero() {
		return fmt.Errorf("%w: startedAt is required", ErrInvalid)
	}
	if !data.HasSale && data.SaleAmount != nil {
		return fmt.Errorf("%w: saleAmount requires hasSale", ErrInvalid)
	}
	if data.ScriptScore != nil && (*data.ScriptScore < models.ScriptScoreMin || *data.ScriptScore > models.ScriptScoreMax) {
		return fmt.Errorf("%w: scriptScore must be between %d and %d", ErrInvalid, models.ScriptScoreMin, models.ScriptScoreMax)
	}
	if data.Sentiment != nil {
		switch *data.Sentiment {
		case models.SentimentPositive, models.SentimentNeutral, models.SentimentNegative:
		default:
			return fmt.Errorf("%w: unknown sentiment %q", ErrInvalid, *data.Sentiment)
		}
	}
	return nil
}
