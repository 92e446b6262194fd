package designation

import (
	"time"

	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
)

type DesignationResponse struct {
	ID            string    `json:"id"`
	DesignationID string    `json:"designationId"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromDataModel(d *catalog.Designation) DesignationResponse {
	return DesignationResponse{
		ID:            d.ID,
		DesignationID: d.DesignationID,
		Name:          d.Name,
		Description:   d.Description,
		IsActive:      d.IsActive,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func FromDataModels(rows []*catalog.Designation) []DesignationResponse {
	out := make([]DesignationResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromDataModel(row))
	}
	return out
}
