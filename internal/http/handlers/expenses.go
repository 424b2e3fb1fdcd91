package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strings"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain/models"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const expenseSelect = `
	SELECT id, booking_id, vehicle_id, driver_id,
	       category, description, amount,
	       DATE_FORMAT(expense_date, '%Y-%m-%d'),
	       COALESCE(receipt_number, ''), COALESCE(vendor, ''),
	       payment_method, status,
	       COALESCE(approved_by, ''),
	       COALESCE(DATE_FORMAT(approval_date, '%Y-%m-%d'), ''),
	       COALESCE(notes, ''),
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), ''),
	       COALESCE(DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM expenses`

func scanExpenseRow(rows *sql.Rows) (models.Expense, error) {
	var e models.Expense
	err := rows.Scan(
		&e.ID, &e.BookingID, &e.VehicleID, &e.DriverID,
		&e.Category, &e.Description, &e.Amount,
		&e.Date,
		&e.ReceiptNumber, &e.Vendor,
		&e.PaymentMethod, &e.Status,
		&e.ApprovedBy, &e.ApprovalDate, &e.Notes,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// GET /api/expenses
func GetExpenses(c *gin.Context) {
	query := expenseSelect
	args := []any{}
	where := []string{}

	if cat := c.Query("category"); cat != "" {
		where = append(where, "category = ?")
		args = append(args, cat)
	}
	if status := c.Query("status"); status != "" {
		where = append(where, "status = ?")
		args = append(args, status)
	}
	if bookingID := c.Query("bookingId"); bookingID != "" {
		where = append(where, "booking_id = ?")
		args = append(args, bookingID)
	}
	if from, to := c.Query("from"), c.Query("to"); from != "" && to != "" {
		where = append(where, "expense_date BETWEEN ? AND ?")
		args = append(args, from, to)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY expense_date DESC, id DESC"

	rows, err := intconfig.DB.Query(query, args...)
	if err != nil {
		log.Println("GetExpenses query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch expenses: " + err.Error()})
		return
	}
	defer rows.Close()

	expenses := []models.Expense{}
	var total float64
	for rows.Next() {
		e, err := scanExpenseRow(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read expenses: " + err.Error()})
			return
		}
		expenses = append(expenses, e)
		total += e.Amount
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read expenses: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses, "totalAmount": total})
}

// GET /api/expenses/:id
func GetExpenseByID(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}

	rows, err := intconfig.DB.Query(expenseSelect+" WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch expense: " + err.Error()})
		return
	}
	defer rows.Close()

	if !rows.Next() {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}
	e, err := scanExpenseRow(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read expense: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, e)
}

// POST /api/expenses
func CreateExpense(c *gin.Context) {
	var input models.Expense
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.Description == "" || input.Amount <= 0 || input.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description, a positive amount and date are required"})
		return
	}
	if input.Category == "" {
		input.Category = models.ExpenseCategoryOther
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = "Cash"
	}
	if input.Status == "" {
		input.Status = models.ExpenseStatusPending
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO expenses (
			booking_id, vehicle_id, driver_id,
			category, description, amount, expense_date,
			receipt_number, vendor, payment_method, status, notes
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		input.BookingID, input.VehicleID, input.DriverID,
		input.Category, input.Description, input.Amount, input.Date,
		intdb.NullIfEmpty(input.ReceiptNumber), intdb.NullIfEmpty(input.Vendor),
		input.PaymentMethod, input.Status, intdb.NullIfEmpty(input.Notes),
	)
	if err != nil {
		log.Println("CreateExpense insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create expense: " + err.Error()})
		return
	}
	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/expenses/:id
func UpdateExpense(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	var input models.Expense
	if !BindJSONOrError(c, &input) {
		return
	}

	_, err := intconfig.DB.Exec(`
		UPDATE expenses SET
			booking_id = ?, vehicle_id = ?, driver_id = ?,
			category = ?, description = ?, amount = ?, expense_date = ?,
			receipt_number = ?, vendor = ?, payment_method = ?, status = ?, notes = ?
		WHERE id = ?
	`,
		input.BookingID, input.VehicleID, input.DriverID,
		input.Category, input.Description, input.Amount, input.Date,
		intdb.NullIfEmpty(input.ReceiptNumber), intdb.NullIfEmpty(input.Vendor),
		input.PaymentMethod, input.Status, intdb.NullIfEmpty(input.Notes),
		id,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update expense: " + err.Error()})
		return
	}
	input.ID = id
	c.JSON(http.StatusOK, input)
}

// POST /api/expenses/:id/approve
func ApproveExpense(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	var req struct {
		ApprovedBy string `json:"approvedBy"`
		Reject     bool   `json:"reject"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}
	status := models.ExpenseStatusApproved
	if req.Reject {
		status = models.ExpenseStatusRejected
	}

	res, err := intconfig.DB.Exec(`
		UPDATE expenses SET status = ?, approved_by = ?, approval_date = ?
		WHERE id = ?
	`, status, intdb.NullIfEmpty(req.ApprovedBy), utils.FormatDate(utils.NowUTC()), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update expense status: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "expense " + status})
}

// DELETE /api/expenses/:id
func DeleteExpense(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	res, err := intconfig.DB.Exec("DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete expense: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}
