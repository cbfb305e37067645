package dto

import "backoffice/internal/models"

// Dilar Request DTOs

// CreateDilarRequest represents the request payload for registering a dilar
type CreateDilarRequest struct {
	OwnerName     string `json:"ownerName" validate:"required,min=1,max=100"`
	ContactNo     string `json:"contactNo" validate:"required,bd_mobile"`
	TradeName     string `json:"tradeName" validate:"omitempty,max=100"`
	TradeLocation string `json:"tradeLocation" validate:"omitempty,max=200"`
	NID           string `json:"nid" validate:"omitempty,max=30"`
	Logo          string `json:"logo" validate:"omitempty,url,max=500"`
}

// UpdateDilarRequest represents a partial update to a dilar.
// Nil fields are left untouched.
type UpdateDilarRequest struct {
	OwnerName     *string `json:"ownerName" validate:"omitempty,min=1,max=100"`
	ContactNo     *string `json:"contactNo" validate:"omitempty,bd_mobile"`
	TradeName     *string `json:"tradeName" validate:"omitempty,max=100"`
	TradeLocation *string `json:"tradeLocation" validate:"omitempty,max=200"`
	NID           *string `json:"nid" validate:"omitempty,max=30"`
	Logo          *string `json:"logo" validate:"omitempty,url,max=500"`
	IsActive      *bool   `json:"isActive"`
}

// Dilar Response DTOs

// DilarListResponse represents a paginated list of dilars
type DilarListResponse struct {
	Success    bool              `json:"success"`
	Data       []models.Dilar    `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}
