package country

import (
	"time"

	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
)

// CountryResponse is the JSON projection of a country row.
type CountryResponse struct {
	ID          string    `json:"id"`
	CountryID   string    `json:"countryId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromDataModel(c *catalog.Country) CountryResponse {
	return CountryResponse{
		ID:          c.ID,
		CountryID:   c.CountryID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromDataModels(rows []*catalog.Country) []CountryResponse {
	out := make([]CountryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromDataModel(row))
	}
	return out
}
