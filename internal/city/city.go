package city

import (
	"time"

	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
)

type CityResponse struct {
	ID        string    `json:"id"`
	CityID    string    `json:"cityId"`
	Name      string    `json:"name"`
	StateID   string    `json:"stateId"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromDataModel(c *catalog.City) CityResponse {
	return CityResponse{
		ID:        c.ID,
		CityID:    c.CityID,
		Name:      c.Name,
		StateID:   c.StateID,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromDataModels(rows []*catalog.City) []CityResponse {
	out := make([]CityResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromDataModel(row))
	}
	return out
}
