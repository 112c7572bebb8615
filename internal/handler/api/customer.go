package api

import (
	"net/http"

	resdto "invoice-dashboard/internal/handler/dto/response"
	"invoice-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerQueries queries.CustomerQueries
}

func NewCustomerHandler(customerQueries queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{
		customerQueries: customerQueries,
	}
}

// @Summary List customers
// @Description List all customers ordered by name
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CustomerResponse
// @Failure 401 {object} map[string]string
// @Router /dashboard/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.CustomerResponse, len(customers))
	for i, cust := range customers {
		response[i] = resdto.FromCustomerView(cust)
	}

	c.JSON(http.StatusOK, response)
}
