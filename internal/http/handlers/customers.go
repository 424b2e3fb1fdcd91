package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strings"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain/models"

	"github.com/gin-gonic/gin"
)

const customerSelect = `
	SELECT id, type, name,
	       COALESCE(cnic, ''), COALESCE(company_registration, ''), COALESCE(license_number, ''),
	       phone, COALESCE(email, ''), COALESCE(address, ''),
	       COALESCE(emergency_name, ''), COALESCE(emergency_phone, ''), COALESCE(emergency_relation, ''),
	       total_bookings, total_amount_paid, outstanding_balance,
	       credit_limit, status, COALESCE(notes, ''),
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), ''),
	       COALESCE(DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM customers`

func scanCustomerRow(rows *sql.Rows) (models.Customer, error) {
	var cust models.Customer
	err := rows.Scan(
		&cust.ID, &cust.Type, &cust.Name,
		&cust.CNIC, &cust.CompanyRegistration, &cust.LicenseNumber,
		&cust.Contact.Phone, &cust.Contact.Email, &cust.Contact.Address,
		&cust.EmergencyContact.Name, &cust.EmergencyContact.Phone, &cust.EmergencyContact.Relation,
		&cust.TotalBookings, &cust.TotalAmountPaid, &cust.OutstandingBalance,
		&cust.CreditLimit, &cust.Status, &cust.Notes,
		&cust.CreatedAt, &cust.UpdatedAt,
	)
	return cust, err
}

// GET /api/customers
func GetCustomers(c *gin.Context) {
	query := customerSelect
	args := []any{}
	where := []string{}

	if t := c.Query("type"); t != "" {
		where = append(where, "type = ?")
		args = append(args, t)
	}
	if status := c.Query("status"); status != "" {
		where = append(where, "status = ?")
		args = append(args, status)
	}
	if search := c.Query("search"); search != "" {
		where = append(where, "(name LIKE ? OR cnic LIKE ? OR phone LIKE ?)")
		like := "%" + search + "%"
		args = append(args, like, like, like)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id DESC"

	rows, err := intconfig.DB.Query(query, args...)
	if err != nil {
		log.Println("GetCustomers query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customers: " + err.Error()})
		return
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		cust, err := scanCustomerRow(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read customers: " + err.Error()})
			return
		}
		customers = append(customers, cust)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read customers: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GET /api/customers/:id
func GetCustomerByID(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	rows, err := intconfig.DB.Query(customerSelect+" WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customer: " + err.Error()})
		return
	}
	defer rows.Close()

	if !rows.Next() {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	cust, err := scanCustomerRow(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read customer: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, cust)
}

// POST /api/customers
func CreateCustomer(c *gin.Context) {
	var input models.Customer
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.Name == "" || input.Contact.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and phone are required"})
		return
	}
	if input.Type == "" {
		input.Type = models.CustomerTypeIndividual
	}
	if input.Status == "" {
		input.Status = models.CustomerStatusActive
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO customers (
			type, name, cnic, company_registration, license_number,
			phone, email, address,
			emergency_name, emergency_phone, emergency_relation,
			credit_limit, status, notes
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		input.Type, input.Name,
		intdb.NullIfEmpty(input.CNIC), intdb.NullIfEmpty(input.CompanyRegistration), intdb.NullIfEmpty(input.LicenseNumber),
		input.Contact.Phone, intdb.NullIfEmpty(input.Contact.Email), intdb.NullIfEmpty(input.Contact.Address),
		intdb.NullIfEmpty(input.EmergencyContact.Name), intdb.NullIfEmpty(input.EmergencyContact.Phone), intdb.NullIfEmpty(input.EmergencyContact.Relation),
		input.CreditLimit, input.Status, intdb.NullIfEmpty(input.Notes),
	)
	if err != nil {
		log.Println("CreateCustomer insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer: " + err.Error()})
		return
	}
	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/customers/:id
func UpdateCustomer(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	var input models.Customer
	if !BindJSONOrError(c, &input) {
		return
	}

	_, err := intconfig.DB.Exec(`
		UPDATE customers SET
			type = ?, name = ?, cnic = ?, company_registration = ?, license_number = ?,
			phone = ?, email = ?, address = ?,
			emergency_name = ?, emergency_phone = ?, emergency_relation = ?,
			credit_limit = ?, status = ?, notes = ?
		WHERE id = ?
	`,
		input.Type, input.Name,
		intdb.NullIfEmpty(input.CNIC), intdb.NullIfEmpty(input.CompanyRegistration), intdb.NullIfEmpty(input.LicenseNumber),
		input.Contact.Phone, intdb.NullIfEmpty(input.Contact.Email), intdb.NullIfEmpty(input.Contact.Address),
		intdb.NullIfEmpty(input.EmergencyContact.Name), intdb.NullIfEmpty(input.EmergencyContact.Phone), intdb.NullIfEmpty(input.EmergencyContact.Relation),
		input.CreditLimit, input.Status, intdb.NullIfEmpty(input.Notes),
		id,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update customer: " + err.Error()})
		return
	}
	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/customers/:id
func DeleteCustomer(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	var active int
	if err := intconfig.DB.QueryRow(`
		SELECT COUNT(*) FROM bookings
		WHERE customer_id = ? AND status IN ('confirmed', 'in_progress')
	`, id).Scan(&active); err == nil && active > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "customer has active bookings"})
		return
	}

	res, err := intconfig.DB.Exec("DELETE FROM customers WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete customer: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}
