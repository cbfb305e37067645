package dto

import "backoffice/internal/models"

// DataResponse is the single-resource envelope used by accounts, exchanges,
// and settings. Dilars and categories carry their own envelopes; client-side
// normalizers tolerate all of them.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// SuccessResponse is the dilar envelope: a success flag and message around
// the payload
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// ListMeta carries pagination metadata alongside list payloads
type ListMeta struct {
	Pagination models.Pagination `json:"pagination"`
}
