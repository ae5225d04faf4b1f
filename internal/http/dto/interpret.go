package dto

import "encoding/json"

type InterpretRequest struct {
	Question   string          `json:"question" binding:"required,min=1,max=2000"`
	KundliData json.RawMessage `json:"kundli_data" binding:"required"`
	UserName   string          `json:"user_name" binding:"omitempty,max=100"`
}

type InterpretResponse struct {
	Response string `json:"response"`
	Cooldown int    `json:"cooldown,omitempty"`
}
