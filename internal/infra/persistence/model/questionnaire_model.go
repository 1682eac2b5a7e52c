package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionnaireModel is the GORM-specific struct for the 'questionnaires' table.
type QuestionnaireModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	SupplierID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Status       string    `gorm:"type:varchar(50);not null;index"`
	DenialReason string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (QuestionnaireModel) TableName() string {
	return "questionnaires"
}

// QuestionModel is the GORM-specific struct for the 'questionnaire_questions'
// table, one row per question including the supplier's answer.
type QuestionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	QuestionnaireID uuid.UUID `gorm:"type:uuid;not null;index"`
	Text            string    `gorm:"type:text;not null"`
	Type            string    `gorm:"type:varchar(50);not null"`
	Options         []string  `gorm:"serializer:json;type:jsonb"`
	Required        bool      `gorm:"not null;default:false"`
	Answer          string    `gorm:"type:text"`
	AttachmentKey   string    `gorm:"type:varchar(512)"`
	Position        int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (QuestionModel) TableName() string {
	return "questionnaire_questions"
}
