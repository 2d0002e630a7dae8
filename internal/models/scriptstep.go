package models

// ScriptStep is a manually tracked checklist item for a conversation.
// Independent from the steps embedded in the LLM analysis blob; the two
// views are not synchronized.
type ScriptStep struct {
	ID             int     `json:"id" gorm:"primaryKey"`
	ConversationID int     `json:"conversationId" gorm:"column:conversation_id;not null;index"`
	StepName       string  `json:"stepName" gorm:"column:step_name;not null"`
	Completed      bool    `json:"completed" gorm:"not null;default:false"`
	Notes          *string `json:"notes"`
}

func (ScriptStep) TableName() string {
	return "script_steps"
}

// ScriptStepCreate is the payload for recording a script step
type ScriptStepCreate struct {
	ConversationID int     `json:"conversationId" validate:"required,gt=0"`
	StepName       string  `json:"stepName" validate:"required"`
	Completed      bool    `json:"completed"`
	Notes          *string `json:"notes"`
}
