package handlers

import (
	"net/http"

	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/dashboard/summary
func GetDashboardSummary(c *gin.Context) {
	svc := services.DashboardService{}
	summary, err := svc.Summary()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /api/dashboard/revenue-chart
func GetRevenueChart(c *gin.Context) {
	svc := services.DashboardService{}
	chart, err := svc.RevenueChart()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}
