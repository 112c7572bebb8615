//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"invoice-dashboard/internal/handler/api"
	resdto "invoice-dashboard/internal/handler/dto/response"
	"invoice-dashboard/internal/infra/viewcache"
	"invoice-dashboard/internal/usecase/commands"
	"invoice-dashboard/internal/usecase/queries"
	"invoice-dashboard/tests/common/builder"
	"invoice-dashboard/tests/common/httptest"
	"invoice-dashboard/tests/common/testutil"
	commandsmock "invoice-dashboard/tests/mock/commands"
	queriesmock "invoice-dashboard/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InvoiceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInvoiceCommands
	mockQueries  *queriesmock.MockInvoiceQueries
	cache        *viewcache.Cache
	handler      *api.InvoiceHandler
}

func (s *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInvoiceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInvoiceQueries(s.mockCtrl)
	s.cache = viewcache.New()
	s.handler = api.NewInvoiceHandler(s.mockCommands, s.mockQueries, s.cache)

	s.router.GET("/dashboard/invoices", s.handler.List)
	s.router.POST("/dashboard/invoices", s.handler.Create)
	s.router.GET("/dashboard/invoices/:id", s.handler.Get)
	s.router.PUT("/dashboard/invoices/:id", s.handler.Update)
	s.router.DELETE("/dashboard/invoices/:id", s.handler.Delete)
	s.router.GET("/dashboard/invoices/:id/edit", s.handler.EditPage)
}

func (s *InvoiceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInvoiceHandlerSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}

func (s *InvoiceHandlerTestSuite) TestList() {
	url := "/dashboard/invoices"
	item := builder.NewInvoiceBuilder().BuildListItem()

	s.Run("success: returns the joined rows", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.InvoiceListItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.InvoiceListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(item.CustomerName, response[0].CustomerName)
		s.Equal(item.Amount, response[0].Amount)
	})

	s.Run("second read is served from the cache", func() {
		s.cache.Invalidate(commands.InvoiceListPath)
		// Exactly one query expectation across both requests.
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.InvoiceListItem{item}, nil).Times(1)

		first := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		second := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, first.Code)
		s.Equal(http.StatusOK, second.Code)
		s.Equal(first.Body.String(), second.Body.String())
	})

	s.Run("invalidation forces a re-query", func() {
		s.cache.Invalidate(commands.InvoiceListPath)
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.InvoiceListItem{item}, nil).Times(2)

		httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.cache.Invalidate(commands.InvoiceListPath)
		httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
	})

	s.Run("error: returns 500 when the query fails", func() {
		s.cache.Invalidate(commands.InvoiceListPath)
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *InvoiceHandlerTestSuite) TestCreate() {
	url := "/dashboard/invoices"
	reqBody := builder.NewInvoiceBuilder().BuildDTO()

	s.Run("success: redirects to the invoice list", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&commands.CreateInvoiceResult{InvoiceID: uuid.New()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusSeeOther, rec.Code)
		s.Equal(commands.InvoiceListPath, rec.Header().Get("Location"))
	})

	s.Run("error: malformed body is rejected at binding", func() {
		malformed := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "amount as number", mutate: testutil.Field("amount", 12.5)},
			{name: "customerId as bool", mutate: testutil.Field("customerId", true)},
			{name: "status as object", mutate: testutil.Field("status", map[string]any{"value": "pending"})},
		}
		for _, tc := range malformed {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			s.Equal(http.StatusBadRequest, rec.Code, tc.name)
		}
	})

	s.Run("error: validation failure returns the field errors", func() {
		verr := &commands.ValidationError{
			FieldErrors: map[string][]string{
				"customerId": {commands.MsgSelectCustomer},
				"amount":     {commands.MsgAmountNotPositive},
			},
			Message: commands.MsgCreateMissingField,
		}
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, verr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ValidationErrorResponse
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal(commands.MsgCreateMissingField, response.Message)
		s.Equal([]string{commands.MsgSelectCustomer}, response.Errors["customerId"])
	})

	s.Run("error: persistence failure returns the create message", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Database Error: Failed to Create Invoice.")
	})
}

func (s *InvoiceHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/dashboard/invoices/" + id.String()
	reqBody := builder.NewInvoiceBuilder().BuildDTO()

	s.Run("success: redirects to the invoice list", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		s.Equal(http.StatusSeeOther, rec.Code)
		s.Equal(commands.InvoiceListPath, rec.Header().Get("Location"))
	})

	s.Run("error: invalid id is rejected before the form is read", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/dashboard/invoices/not-a-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid invoice ID format")
	})

	s.Run("error: validation failure uses the update message", func() {
		verr := &commands.ValidationError{
			FieldErrors: map[string][]string{"status": {commands.MsgSelectValidStatus}},
			Message:     commands.MsgUpdateMissingField,
		}
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(verr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.ValidationErrorResponse
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal(commands.MsgUpdateMissingField, response.Message)
	})

	s.Run("error: persistence failure returns the update message", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Database Error: Failed to Update Invoice.")
	})
}

func (s *InvoiceHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/dashboard/invoices/" + id.String()

	s.Run("success: returns 204 with no redirect", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Header().Get("Location"))
	})

	s.Run("error: persistence failure returns the delete message", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Database Error: Failed to Delete Invoice.")
	})
}

func (s *InvoiceHandlerTestSuite) TestEditPage() {
	invoiceBuilder := builder.NewInvoiceBuilder()
	view := invoiceBuilder.BuildReadModel()
	url := "/dashboard/invoices/" + view.ID.String() + "/edit"

	s.Run("success: returns breadcrumbs, invoice and customers", func() {
		page := &queries.EditPage{
			Invoice: view,
			Customers: []*queries.CustomerView{
				builder.NewCustomerBuilder().BuildReadModel(),
				builder.NewCustomerBuilder().WithName("Lee Robinson").BuildReadModel(),
			},
		}
		s.mockQueries.EXPECT().GetEditPage(gomock.Any(), view.ID).
			Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.EditPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Breadcrumbs, 2)
		s.Equal("Invoices", response.Breadcrumbs[0].Label)
		s.False(response.Breadcrumbs[0].Active)
		s.Equal("Edit Invoice", response.Breadcrumbs[1].Label)
		s.True(response.Breadcrumbs[1].Active)
		s.Equal(view.ID, response.Invoice.ID)
		s.Len(response.Customers, 2)
	})

	s.Run("error: missing invoice returns 404", func() {
		s.mockQueries.EXPECT().GetEditPage(gomock.Any(), view.ID).
			Return(nil, queries.ErrInvoiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Invoice not found")
	})
}
