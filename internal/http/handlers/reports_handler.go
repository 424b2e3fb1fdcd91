package handlers

import (
	"net/http"
	"strconv"
	"time"

	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func monthlyFilterFromQuery(c *gin.Context) services.MonthlyRentalFilter {
	now := time.Now()
	f := services.MonthlyRentalFilter{Year: now.Year(), Month: int(now.Month())}
	if y, err := strconv.Atoi(c.Query("year")); err == nil {
		f.Year = y
	}
	if m, err := strconv.Atoi(c.Query("month")); err == nil {
		f.Month = m
	}
	return f
}

func sendXLSX(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// GET /api/reports/monthly-rental
func GetMonthlyRentalReport(c *gin.Context) {
	svc := services.ReportsService{}
	f := monthlyFilterFromQuery(c)

	if c.Query("format") == "xlsx" {
		data, filename, err := svc.MonthlyRentalXLSX(f)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		sendXLSX(c, data, filename)
		return
	}

	items, err := svc.MonthlyRental(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/reports/vehicle-summary
func GetVehicleSummaryReport(c *gin.Context) {
	svc := services.ReportsService{}

	if c.Query("format") == "xlsx" {
		data, filename, err := svc.VehicleSummaryXLSX()
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		sendXLSX(c, data, filename)
		return
	}

	items, err := svc.VehicleSummary()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/reports/driver-report
func GetDriverReport(c *gin.Context) {
	svc := services.ReportsService{}

	if c.Query("format") == "xlsx" {
		data, filename, err := svc.DriverSummaryXLSX()
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		sendXLSX(c, data, filename)
		return
	}

	items, err := svc.DriverSummary()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
