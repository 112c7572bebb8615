//go:build unit

package builder

import (
	"invoice-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID       uuid.UUID
	Name     string
	Email    string
	ImageURL string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:       uuid.New(),
		Name:     "Amy Burns",
		Email:    "amy@burns.com",
		ImageURL: "/customers/amy-burns.png",
	}
}

func (b *CustomerBuilder) BuildReadModel() *queries.CustomerView {
	return &queries.CustomerView{
		ID:       b.ID,
		Name:     b.Name,
		Email:    b.Email,
		ImageURL: b.ImageURL,
	}
}

func (b *CustomerBuilder) WithName(name string) *CustomerBuilder {
	b.Name = name
	return b
}
