package handlers

import (
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings/:id/invoice
func GetBookingInvoicePDF(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateInvoice(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
