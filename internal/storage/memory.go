package storage

import (
	"fmt"
	"sort"
	"sync"

	"github.com/foco-sales/foco-backend/internal/models"
)

// MemoryStore holds all data in memory, for tests and local development
type MemoryStore struct {
	salespeople   map[int]*models.Salesperson
	conversations map[int]*models.Conversation
	scriptSteps   map[int]*models.ScriptStep

	// Mutexes for thread safety
	salespersonMu  sync.RWMutex
	conversationMu sync.RWMutex
	scriptStepMu   sync.RWMutex

	// Counters for ID generation, guarded by the entity mutex
	salespersonCounter  int
	conversationCounter int
	scriptStepCounter   int
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		salespeople:   make(map[int]*models.Salesperson),
		conversations: make(map[int]*models.Conversation),
		scriptSteps:   make(map[int]*models.ScriptStep),
	}
}

// Salesperson operations

func (m *MemoryStore) GetSalespeople() ([]*models.Salesperson, error) {
	m.salespersonMu.RLock()
	defer m.salespersonMu.RUnlock()

	people := make([]*models.Salesperson, 0, len(m.salespeople))
	for _, person := range m.salespeople {
		people = append(people, person)
	}
	sort.Slice(people, func(i, j int) bool {
		return people[i].ID < people[j].ID
	})
	return people, nil
}

func (m *MemoryStore) GetSalesperson(id int) (*models.Salesperson, error) {
	m.salespersonMu.RLock()
	defer m.salespersonMu.RUnlock()

	person, exists := m.salespeople[id]
	if !exists {
		return nil, fmt.Errorf("salesperson %d: %w", id, ErrNotFound)
	}
	return person, nil
}

func (m *MemoryStore) CreateSalesperson(data *models.SalespersonCreate) (*models.Salesperson, error) {
	m.salespersonMu.Lock()
	defer m.salespersonMu.Unlock()

	for _, person := range m.salespeople {
		if person.Email == data.Email {
			return nil, fmt.Errorf("%w: email %s already registered", ErrInvalid, data.Email)
		}
	}

	isActive := true
	if data.IsActive != nil {
		isActive = *data.IsActive
	}

	m.salespersonCounter++
	person := &models.Salesperson{
		ID:       m.salespersonCounter,
		Name:     data.Name,
		Email:    data.Email,
		Avatar:   data.Avatar,
		IsActive: isActive,
	}

	m.salespeople[person.ID] = person
	return person, nil
}

// Conversation operations

func (m *MemoryStore) GetConversations(filter *models.ConversationFilter) ([]*models.Conversation, error) {
	m.conversationMu.RLock()
	defer m.conversationMu.RUnlock()

	results := make([]*models.Conversation, 0)
	for _, conv := range m.conversations {
		if filter.Matches(conv) {
			results = append(results, conv)
		}
	}

	// Most recent first; ties broken by id for deterministic output
	sort.Slice(results, func(i, j int) bool {
		if results[i].StartedAt.Equal(results[j].StartedAt) {
			return results[i].ID < results[j].ID
		}
		return results[i].StartedAt.After(results[j].StartedAt)
	})
	return results, nil
}

func (m *MemoryStore) GetConversation(id int) (*models.Conversation, error) {
	m.conversationMu.RLock()
	defer m.conversationMu.RUnlock()

	conv, exists := m.conversations[id]
	if !exists {
		return nil, fmt.Errorf("conversation %d: %w", id, ErrNotFound)
	}
	return conv, nil
}

func (m *MemoryStore) CreateConversation(data *models.ConversationCreate) (*models.Conversation, error) {
	if err := checkConversationCreate(data); err != nil {
		return nil, err
	}

	// Owning salesperson must exist
	if _, err := m.GetSalesperson(data.SalespersonID); err != nil {
		return nil, fmt.Errorf("%w: salesperson %d does not exist", ErrInvalid, data.SalespersonID)
	}

	m.conversationMu.Lock()
	defer m.conversationMu.Unlock()

	m.conversationCounter++
	conv := &models.Conversation{
		ID:            m.conversationCounter,
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

	m.conversations[conv.ID] = conv
	return conv, nil
}

// Script step operations

func (m *MemoryStore) GetScriptSteps(conversationID int) ([]*models.ScriptStep, error) {
	m.scriptStepMu.RLock()
	defer m.scriptStepMu.RUnlock()

	steps := make([]*models.ScriptStep, 0)
	for _, step := range m.scriptSteps {
		if step.ConversationID == conversationID {
			steps = append(steps, step)
		}
	}
	sort.Slice(steps, func(i, j int) bool {
		return steps[i].ID < steps[j].ID
	})
	return steps, nil
}

func (m *MemoryStore) CreateScriptStep(data *models.ScriptStepCreate) (*models.ScriptStep, error) {
	// Owning conversation must exist
	if _, err := m.GetConversation(data.ConversationID); err != nil {
		return nil, fmt.Errorf("%w: conversation %d does not exist", ErrInvalid, data.ConversationID)
	}

	m.scriptStepMu.Lock()
	defer m.scriptStepMu.Unlock()

	m.scriptStepCounter++
	step := &models.ScriptStep{
		ID:             m.scriptStepCounter,
		ConversationID: data.ConversationID,
		StepName:       data.StepName,
		Completed:      data.Completed,
		Notes:          data.Notes,
	}

	m.scriptSteps[step.ID] = step
	return step, nil
}
