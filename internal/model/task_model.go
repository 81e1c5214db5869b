package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId *uuid.UUID `gorm:"type:uuid;index"`
	Title          string     `gorm:"type:text;not null"`
	Description    string     `gorm:"type:text"`
	Status         string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

func (Task) TableName() string {
	return "tasks"
}
