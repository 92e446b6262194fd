package state

import (
	"time"

	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
)

type StateResponse struct {
	ID        string    `json:"id"`
	StateID   string    `json:"stateId"`
	Name      string    `json:"name"`
	CountryID string    `json:"countryId"`
	Country   string    `json:"country"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromDataModel(s *catalog.State) StateResponse {
	return StateResponse{
		ID:        s.ID,
		StateID:   s.StateID,
		Name:      s.Name,
		CountryID: s.CountryID,
		Country:   s.Country,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func FromDataModels(rows []*catalog.State) []StateResponse {
	out := make([]StateResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromDataModel(row))
	}
	return out
}
