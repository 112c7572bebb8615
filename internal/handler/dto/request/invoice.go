package request

import (
	"invoice-dashboard/internal/usecase/commands"
)

// InvoiceFormRequest carries the submitted invoice form as-is. Fields stay
// strings so the command layer can validate them all together and report
// every failure at once, instead of binding rejecting the first.
type InvoiceFormRequest struct {
	CustomerID string `json:"customerId" form:"customerId"`
	Amount     string `json:"amount" form:"amount"`
	Status     string `json:"status" form:"status"`
}

func (r InvoiceFormRequest) ToForm() commands.InvoiceForm {
	return commands.InvoiceForm{
		CustomerID: r.CustomerID,
		Amount:     r.Amount,
		Status:     r.Status,
	}
}
