package models

// Salesperson represents a member of the sales team
type Salesperson struct {
	ID       int     `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"not null"`
	Email    string  `json:"email" gorm:"uniqueIndex;not null"`
	Avatar   *string `json:"avatar"`
	IsActive bool    `json:"isActive" gorm:"column:is_active;not null;default:true"`
}

// TableName overrides the default pluralization ("salespeople", not "salespersons")
func (Salesperson) TableName() string {
	return "salespeople"
}

// SalespersonCreate is the payload for registering a new salesperson
type SalespersonCreate struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Avatar   *string `json:"avatar"`
	IsActive *bool   `json:"isActive"`
}
