package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/foco-sales/foco-backend/internal/models"
)

// DatabaseStore implements Store on top of a GORM Postgres connection.
// IDs are assigned by the database (serial columns), so concurrent inserts
// never collide.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a database-backed store
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Salesperson operations

func (d *DatabaseStore) GetSalespeople() ([]*models.Salesperson, error) {
	people := make([]*models.Salesperson, 0)
	if err := d.db.Order("id ASC").Find(&people).Error; err != nil {
		return nil, fmt.Errorf("failed to list salespeople: %w", err)
	}
	return people, nil
}

func (d *DatabaseStore) GetSalesperson(id int) (*models.Salesperson, error) {
	var person models.Salesperson
	if err := d.db.First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("salesperson %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get salesperson %d: %w", id, err)
	}
	return &person, nil
}

func (d *DatabaseStore) CreateSalesperson(data *models.SalespersonCreate) (*models.Salesperson, error) {
	isActive := true
	if data.IsActive != nil {
		isActive = *data.IsActive
	}

	person := &models.Salesperson{
		Name:     data.Name,
		Email:    data.Email,
		Avatar:   data.Avatar,
		IsActive: isActive,
	}
	if err := d.db.Create(person).Error; err != nil {
		// Unique-index violation on email; same error class as the memory store
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email %s already registered", ErrInvalid, data.Email)
		}
		return nil, fmt.Errorf("failed to create salesperson: %w", err)
	}
	return person, nil
}

// Conversation operations

func (d *DatabaseStore) GetConversations(filter *models.ConversationFilter) ([]*models.Conversation, error) {
	q := d.db.Model(&models.Conversation{})
	if filter != nil {
		if filter.SalespersonID != nil {
			q = q.Where("salesperson_id = ?", *filter.SalespersonID)
		}
		if filter.StartDate != nil {
			q = q.Where("started_at >= ?", *filter.StartDate)
		}
		if filter.EndDate != nil {
			q = q.Where("started_at <= ?", *filter.EndDate)
		}
		if filter.HasSale != nil {
			q = q.Where("has_sale = ?", *filter.HasSale)
		}
		// A conversation with no score fails any score bound
		if filter.MinScore != nil {
			q = q.Where("script_score IS NOT NULL AND script_score >= ?", *filter.MinScore)
		}
		if filter.MaxScore != nil {
			q = q.Where("script_score IS NOT NULL AND script_score <= ?", *filter.MaxScore)
		}
	}

	conversations := make([]*models.Conversation, 0)
	if err := q.Order("started_at DESC").Order("id ASC").Find(&conversations).Error; err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}

func (d *DatabaseStore) GetConversation(id int) (*models.Conversation, error) {
	var conv models.Conversation
	if err := d.db.First(&conv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("conversation %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get conversation %d: %w", id, err)
	}
	return &conv, nil
}

func (d *DatabaseStore) CreateConversation(data *models.ConversationCreate) (*models.Conversation, error) {
	if err := checkConversationCreate(data); err != nil {
		return nil, err
	}

	if _, err := d.GetSalesperson(data.SalespersonID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: salesperson %d does not exist", ErrInvalid, data.SalespersonID)
		}
		return nil, err
	}

	conv := &models.Conversation{
		SalespersonID: data.SalespersonID,
		CustomerID:    data.CustomerID,
		CustomerName:  data.CustomerName,
		StartedAt:     data.StartedAt,
		EndedAt:       data.EndedAt,
		Duration:      data.Duration,
		ResponseTime:  data.ResponseTime,
		HasSale:       data.HasSale,
		SaleAmount:    data.SaleAmount,
		ScriptScore:   data.ScriptScore,
		Sentiment:     data.Sentiment,
		Transcript:    data.Transcript,
		LLMAnalysis:   data.LLMAnalysis,
	}
	if err := d.db.Create(conv).Error; err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conv, nil
}

// Script step operations

func (d *DatabaseStore) GetScriptSteps(conversationID int) ([]*models.ScriptStep, error) {
	steps := make([]*models.ScriptStep, 0)
	if err := d.db.Where("conversation_id = ?", conversationID).Order("id ASC").Find(&steps).Error; err != nil {
		return nil, fmt.Errorf("failed to list script steps: %w", err)
	}
	return steps, nil
}

func (d *DatabaseStore) CreateScriptStep(data *models.ScriptStepCreate) (*models.ScriptStep, error) {
	if _, err := d.GetConversation(data.ConversationID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: conversation %d does not exist", ErrInvalid, data.ConversationID)
		}
		return nil, err
	}

	step := &models.ScriptStep{
		ConversationID: data.ConversationID,
		StepName:       data.StepName,
		Completed:      data.Completed,
		Notes:          data.Notes,
	}
	if err := d.db.Create(step).Error; err != nil {
		return nil, fmt.Errorf("failed to create script step: %w", err)
	}
	return step, nil
}
