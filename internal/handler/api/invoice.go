package api

import (
	"encoding/json"
	"errors"
	"net/http"

	reqdto "invoice-dashboard/internal/handler/dto/request"
	resdto "invoice-dashboard/internal/handler/dto/response"
	"invoice-dashboard/internal/infra/viewcache"
	"invoice-dashboard/internal/usecase/commands"
	"invoice-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	invoiceCommands commands.InvoiceCommands
	invoiceQueries  queries.InvoiceQueries
	cache           *viewcache.Cache
}

func NewInvoiceHandler(
	invoiceCommands commands.InvoiceCommands,
	invoiceQueries queries.InvoiceQueries,
	cache *viewcache.Cache,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceCommands: invoiceCommands,
		invoiceQueries:  invoiceQueries,
		cache:           cache,
	}
}

// @Summary List invoices
// @Description List all invoices joined with their customer, newest first
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.InvoiceListItemResponse
// @Failure 401 {object} map[string]string
// @Router /dashboard/invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	if payload, ok := h.cache.Get(commands.InvoiceListPath); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	items, err := h.invoiceQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.InvoiceListItemResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromInvoiceListItem(item)
	}

	payload, err := json.Marshal(response)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.cache.Set(commands.InvoiceListPath, payload)
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// @Summary Get invoice
// @Description Get invoice by ID
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /dashboard/invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	view, err := h.invoiceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// @Summary Edit page data
// @Description Invoice under edit plus the selectable customers
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.EditPageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /dashboard/invoices/{id}/edit [get]
func (h *InvoiceHandler) EditPage(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	page, err := h.invoiceQueries.GetEditPage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	editHref := commands.InvoiceListPath + "/" + id.String() + "/edit"
	c.JSON(http.StatusOK, resdto.FromEditPage(page, editHref))
}

// @Summary Create invoice
// @Description Create an invoice from the submitted form and redirect to the list
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InvoiceFormRequest true "Invoice form"
// @Success 303 "See Other"
// @Failure 422 {object} resdto.ValidationErrorResponse
// @Failure 500 {object} map[string]string
// @Router /dashboard/invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req reqdto.InvoiceFormRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	_, err := h.invoiceCommands.Create(c.Request.Context(), req.ToForm())
	if err != nil {
		if h.respondValidation(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Database Error: Failed to Create Invoice.",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, commands.InvoiceListPath)
}

// @Summary Update invoice
// @Description Overwrite the invoice from the submitted form and redirect to the list
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param request body reqdto.InvoiceFormRequest true "Invoice form"
// @Success 303 "See Other"
// @Failure 422 {object} resdto.ValidationErrorResponse
// @Failure 500 {object} map[string]string
// @Router /dashboard/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.InvoiceFormRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.invoiceCommands.Update(c.Request.Context(), id, req.ToForm()); err != nil {
		if h.respondValidation(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Database Error: Failed to Update Invoice.",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, commands.InvoiceListPath)
}

// @Summary Delete invoice
// @Description Delete the invoice; deleting an absent id succeeds
// @Tags invoices
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /dashboard/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.invoiceCommands.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Database Error: Failed to Delete Invoice.",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *InvoiceHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid invoice ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// respondValidation renders a failed form submission; the field errors go
// back as-is so the form can annotate every offending input.
func (h *InvoiceHandler) respondValidation(c *gin.Context, err error) bool {
	var verr *commands.ValidationError
	if !errors.As(err, &verr) {
		return false
	}

	c.JSON(http.StatusUnprocessableEntity, resdto.ValidationErrorResponse{
		Errors:  verr.FieldErrors,
		Message: verr.Message,
	})
	return true
}
