package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foco-sales/foco-backend/internal/models"
)

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()

	_, err := store.CreateSalesperson(&models.SalespersonCreate{Name: "Maria Silva", Email: "maria@company.com"})
	require.NoError(t, err)
	_, err = store.CreateSalesperson(&models.SalespersonCreate{Name: "Joao Oliveira", Email: "joao@company.com"})
	require.NoError(t, err)

	return store
}

func newConversation(salespersonID int, startedAt time.Time) *models.ConversationCreate {
	return &models.ConversationCreate{
		SalespersonID: salespersonID,
		CustomerID:    "cust_test",
		StartedAt:     startedAt,
	}
}

func TestCreateSalespersonAssignsSequentialIDs(t *testing.T) {
	store := newTestStore(t)

	third, err := store.CreateSalesperson(&models.SalespersonCreate{Name: "Ana Santos", Email: "ana@company.com"})
	require.NoError(t, err)

	assert.Equal(t, 3, third.ID)
	assert.True(t, third.IsActive, "isActive should default to true")
}

func TestCreateSalespersonRejectsDuplicateEmail(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateSalesperson(&models.SalespersonCreate{Name: "Other Maria", Email: "maria@company.com"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestGetSalespersonNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetSalesperson(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateConversationRequiresExistingSalesperson(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateConversation(newConversation(42, time.Now()))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCreateConversationRejectsSaleAmountWithoutSale(t *testing.T) {
	store := newTestStore(t)

	conv := newConversation(1, time.Now())
	conv.HasSale = false
	conv.SaleAmount = ptr(100.0)

	_, err := store.CreateConversation(conv)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCreateConversationRejectsScoreOutOfRange(t *testing.T) {
	store := newTestStore(t)

	conv := newConversation(1, time.Now())
	conv.ScriptScore = ptr(101)

	_, err := store.CreateConversation(conv)
	assert.ErrorIs(t, err, ErrInvalid)

	conv.ScriptScore = ptr(-1)
	_, err = store.CreateConversation(conv)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCreateConversationRejectsUnknownSentiment(t *testing.T) {
	store := newTestStore(t)

	conv := newConversation(1, time.Now())
	conv.Sentiment = ptr("ecstatic")

	_, err := store.CreateConversation(conv)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestGetConversationNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetConversation(1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetConversationsOrdering(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, time.January, 11, 10, 0, 0, 0, time.UTC)

	// Insert out of chronological order; ids 1..3
	_, err := store.CreateConversation(newConversation(1, base))
	require.NoError(t, err)
	_, err = store.CreateConversation(newConversation(1, base.Add(time.Hour)))
	require.NoError(t, err)
	_, err = store.CreateConversation(newConversation(2, base.Add(time.Hour)))
	require.NoError(t, err)

	results, err := store.GetConversations(nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Most recent first; the two tied timestamps ordered by id ascending
	assert.Equal(t, 2, results[0].ID)
	assert.Equal(t, 3, results[1].ID)
	assert.Equal(t, 1, results[2].ID)
}

func TestScoreBoundsExcludeMissingScore(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, time.January, 11, 10, 0, 0, 0, time.UTC)

	high := newConversation(1, base)
	high.ScriptScore = ptr(90)
	_, err := store.CreateConversation(high)
	require.NoError(t, err)

	low := newConversation(1, base.Add(time.Minute))
	low.ScriptScore = ptr(50)
	_, err = store.CreateConversation(low)
	require.NoError(t, err)

	_, err = store.CreateConversation(newConversation(1, base.Add(2*time.Minute))) // no score
	require.NoError(t, err)

	results, err := store.GetConversations(&models.ConversationFilter{MinScore: ptr(70)})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 90, *results[0].ScriptScore)

	// An unscored conversation also fails a max bound
	results, err = store.GetConversations(&models.ConversationFilter{MaxScore: ptr(95)})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestDateRangeBoundsAreInclusive(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, time.January, 11, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := store.CreateConversation(newConversation(1, base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	results, err := store.GetConversations(&models.ConversationFilter{
		StartDate: ptr(base),
		EndDate:   ptr(base.Add(time.Hour)),
	})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Absent bound leaves that side open
	results, err = store.GetConversations(&models.ConversationFilter{StartDate: ptr(base.Add(time.Hour))})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestHasSaleFilter(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, time.January, 11, 10, 0, 0, 0, time.UTC)

	sale := newConversation(1, base)
	sale.HasSale = true
	sale.SaleAmount = ptr(500.0)
	_, err := store.CreateConversation(sale)
	require.NoError(t, err)

	_, err = store.CreateConversation(newConversation(1, base.Add(time.Minute)))
	require.NoError(t, err)

	results, err := store.GetConversations(&models.ConversationFilter{HasSale: ptr(true)})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].HasSale)

	results, err = store.GetConversations(&models.ConversationFilter{HasSale: ptr(false)})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].HasSale)
}

func TestFilterPredicatesCompose(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, time.January, 11, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 6; i++ {
		conv := newConversation(1, base.Add(time.Duration(i)*time.Hour))
		if i%2 == 0 {
			conv.HasSale = true
		}
		_, err := store.CreateConversation(conv)
		require.NoError(t, err)
	}

	combined, err := store.GetConversations(&models.ConversationFilter{
		StartDate: ptr(base.Add(2 * time.Hour)),
		HasSale:   ptr(true),
	})
	require.NoError(t, err)

	// The combined result equals the date-filtered result narrowed by hasSale
	dateOnly, err := store.GetConversations(&models.ConversationFilter{
		StartDate: ptr(base.Add(2 * time.Hour)),
	})
	require.NoError(t, err)

	narrowed := make([]*models.Conversation, 0)
	saleFilter := &models.ConversationFilter{HasSale: ptr(true)}
	for _, c := range dateOnly {
		if saleFilter.Matches(c) {
			narrowed = append(narrowed, c)
		}
	}
	assert.Equal(t, narrowed, combined)
}

func TestScriptSteps(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateScriptStep(&models.ScriptStepCreate{ConversationID: 1, StepName: "greeting"})
	assert.ErrorIs(t, err, ErrInvalid, "step must reference an existing conversation")

	conv, err := store.CreateConversation(newConversation(1, time.Now()))
	require.NoError(t, err)

	step, err := store.CreateScriptStep(&models.ScriptStepCreate{
		ConversationID: conv.ID,
		StepName:       "greeting",
		Completed:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, step.ID)

	_, err = store.CreateScriptStep(&models.ScriptStepCreate{ConversationID: conv.ID, StepName: "videoPitch"})
	require.NoError(t, err)

	steps, err := store.GetScriptSteps(conv.ID)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "greeting", steps[0].StepName)
	assert.Equal(t, "videoPitch", steps[1].StepName)

	steps, err = store.GetScriptSteps(999)
	require.NoError(t, err)
	assert.Empty(t, steps)
}
