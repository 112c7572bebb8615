package response

import (
	"invoice-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"imageUrl"`
}

func FromCustomerView(rm *queries.CustomerView) *CustomerResponse {
	return &CustomerResponse{
		ID:       rm.ID,
		Name:     rm.Name,
		Email:    rm.Email,
		ImageURL: rm.ImageURL,
	}
}
