package handlers

import (
	"net/http"
	"strconv"

	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingFilterFromQuery(c *gin.Context) repositories.BookingFilter {
	f := repositories.BookingFilter{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("paymentStatus"),
		RentalType:    c.Query("rentalType"),
		Search:        c.Query("search"),
		StartFrom:     c.Query("from"),
		StartTo:       c.Query("to"),
	}
	if v, err := strconv.ParseInt(c.Query("customerId"), 10, 64); err == nil {
		f.CustomerID = v
	}
	if v, err := strconv.ParseInt(c.Query("vehicleId"), 10, 64); err == nil {
		f.VehicleID = v
	}
	if v, err := strconv.ParseInt(c.Query("driverId"), 10, 64); err == nil {
		f.DriverID = v
	}
	return f
}

// GET /api/bookings
func GetBookings(c *gin.Context) {
	svc := services.BookingService{}
	bookings, err := svc.List(bookingFilterFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	svc := services.BookingService{}
	booking, err := svc.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var input models.Booking
	if !BindJSONOrError(c, &input) {
		return
	}
	svc := services.BookingService{}
	booking, err := svc.Create(&input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// PUT /api/bookings/:id
func UpdateBooking(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	var input models.Booking
	if !BindJSONOrError(c, &input) {
		return
	}
	svc := services.BookingService{}
	booking, err := svc.Update(id, &input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/bookings/:id/complete
func CompleteBooking(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	var req struct {
		ActualReturnDate string   `json:"actualReturnDate"`
		MileageEnd       *float64 `json:"mileageEnd"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.BookingService{}
	booking, err := svc.Complete(id, req.ActualReturnDate, req.MileageEnd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/bookings/:id/payments
func RecordBookingPayment(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	var req struct {
		Amount float64 `json:"amount"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.BookingService{}
	booking, err := svc.RecordPayment(id, req.Amount)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DELETE /api/bookings/:id
func DeleteBooking(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	svc := services.BookingService{}
	if err := svc.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}
