package model

import (
	"time"

	"github.com/google/uuid"
)

type Settings struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AssistantName      string    `gorm:"type:varchar(100);not null"`
	SystemInstructions string    `gorm:"type:text"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (Settings) TableName() string {
	return "settings"
}
