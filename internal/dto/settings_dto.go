package dto

import "time"

type UpdateSettingsRequest struct {
	AssistantName      *string `json:"assistant_name,omitempty"`
	SystemInstructions *string `json:"system_instructions,omitempty"`
}

type SettingsResponse struct {
	AssistantName      string    `json:"assistant_name"`
	SystemInstructions string    `json:"system_instructions"`
	UpdatedAt          time.Time `json:"updated_at"`
}
