package dto

import "github.com/madrasah-accounts/backend/internal/domain/entity"

// CounterpartyResponse represents a counterparty in API responses.
type CounterpartyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// CounterpartyListResponse represents a list of counterparties.
type CounterpartyListResponse struct {
	Counterparties []CounterpartyResponse `json:"counterparties"`
}

// SavedSenderListResponse represents the remembered sender names.
type SavedSenderListResponse struct {
	Senders []string `json:"senders"`
}

// SaveSenderRequest represents the payload to remember a sender name.
type SaveSenderRequest struct {
	Sender string `json:"sender" binding:"required"`
}

// ToCounterpartyResponse converts a counterparty entity to its response DTO.
func ToCounterpartyResponse(counterparty *entity.Counterparty) CounterpartyResponse {
	return CounterpartyResponse{
		ID:   counterparty.ID,
		Name: counterparty.Name,
		Kind: string(counterparty.Kind),
	}
}

// ToCounterpartyListResponse converts a list of counterparty entities.
func ToCounterpartyListResponse(counterparties []*entity.Counterparty) CounterpartyListResponse {
	responses := make([]CounterpartyResponse, len(counterparties))
	for i, counterparty := range counterparties {
		responses[i] = ToCounterpartyResponse(counterparty)
	}
	return CounterpartyListResponse{Counterparties: responses}
}
