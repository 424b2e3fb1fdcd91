package api

import (
	"log"
	stdhttp "net/http"

	intconfig "backend/internal/config"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	middleware.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.GET("/me", middleware.RequireAuth(), h.Me)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth())

		vehicles := protected.Group("/vehicles")
		vehicles.GET("", h.GetVehicles)
		vehicles.GET("/:id", h.GetVehicleByID)
		vehicles.POST("", h.CreateVehicle)
		vehicles.PUT("/:id", h.UpdateVehicle)
		vehicles.DELETE("/:id", h.DeleteVehicle)
		vehicles.GET("/:id/maintenance", h.GetVehicleMaintenance)
		vehicles.POST("/:id/maintenance", h.AddVehicleMaintenance)

		outsourced := protected.Group("/outsourced-vehicles")
		outsourced.GET("", h.GetOutsourcedVehicles)
		outsourced.GET("/:id", h.GetOutsourcedVehicleByID)
		outsourced.POST("", h.CreateOutsourcedVehicle)
		outsourced.PUT("/:id", h.UpdateOutsourcedVehicle)
		outsourced.POST("/:id/payments", h.RecordOutsourcedPayment)
		outsourced.DELETE("/:id", h.DeleteOutsourcedVehicle)

		customers := protected.Group("/customers")
		customers.GET("", h.GetCustomers)
		customers.GET("/:id", h.GetCustomerByID)
		customers.POST("", h.CreateCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)

		drivers := protected.Group("/drivers")
		drivers.GET("", h.GetDrivers)
		drivers.GET("/:id", h.GetDriverByID)
		drivers.POST("", h.CreateDriver)
		drivers.PUT("/:id", h.UpdateDriver)
		drivers.DELETE("/:id", h.DeleteDriver)

		bookings := protected.Group("/bookings")
		bookings.GET("", h.GetBookings)
		bookings.GET("/:id", h.GetBookingByID)
		bookings.POST("", h.CreateBooking)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.POST("/:id/complete", h.CompleteBooking)
		bookings.POST("/:id/payments", h.RecordBookingPayment)
		bookings.GET("/:id/invoice", h.GetBookingInvoicePDF)
		bookings.DELETE("/:id", h.DeleteBooking)

		expenses := protected.Group("/expenses")
		expenses.GET("", h.GetExpenses)
		expenses.GET("/:id", h.GetExpenseByID)
		expenses.POST("", h.CreateExpense)
		expenses.PUT("/:id", h.UpdateExpense)
		expenses.POST("/:id/approve", h.ApproveExpense)
		expenses.DELETE("/:id", h.DeleteExpense)

		payments := protected.Group("/payments")
		payments.GET("", h.GetPayments)
		payments.GET("/summary", h.GetPaymentSummary)
		payments.GET("/customer-balances", h.GetCustomerBalances)
		payments.GET("/:id", h.GetPaymentByID)
		payments.POST("", h.CreatePayment)
		payments.PUT("/:id", h.UpdatePayment)
		payments.POST("/:id/record", h.RecordPayment)
		payments.DELETE("/:id", h.DeletePayment)

		dashboard := protected.Group("/dashboard")
		dashboard.GET("/summary", h.GetDashboardSummary)
		dashboard.GET("/revenue-chart", h.GetRevenueChart)

		reports := protected.Group("/reports")
		reports.GET("/monthly-rental", h.GetMonthlyRentalReport)
		reports.GET("/vehicle-summary", h.GetVehicleSummaryReport)
		reports.GET("/driver-report", h.GetDriverReport)
	}

	return r
}
