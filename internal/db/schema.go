package db

import "database/sql"

// EnsureSchema creates any missing tables on startup. Statements are
// IF NOT EXISTS so an existing database is never altered.
func EnsureSchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return applyColumnMigrations(db)
}

// Columns added after the initial release; older installs pick them up here.
var columnMigrations = []struct {
	table, column, ddl string
}{
	{"bookings", "actual_return_date", `ALTER TABLE bookings ADD COLUMN actual_return_date DATE`},
	{"bookings", "security_deposit", `ALTER TABLE bookings ADD COLUMN security_deposit DOUBLE NOT NULL DEFAULT 0`},
	{"vehicles", "vendor_daily_rate", `ALTER TABLE vehicles ADD COLUMN vendor_daily_rate DOUBLE`},
	{"customers", "credit_limit", `ALTER TABLE customers ADD COLUMN credit_limit DOUBLE NOT NULL DEFAULT 0`},
}

func applyColumnMigrations(db *sql.DB) error {
	for _, m := range columnMigrations {
		if !HasTable(db, m.table) || HasColumn(db, m.table, m.column) {
			continue
		}
		if _, err := db.Exec(m.ddl); err != nil {
			return err
		}
	}
	return nil
}

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	username VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(50) NOT NULL DEFAULT '',
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(50) NOT NULL DEFAULT 'user',
	status VARCHAR(50) NOT NULL DEFAULT 'active',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_email (email),
	UNIQUE KEY uniq_username (username)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS sequences (
	name VARCHAR(50) PRIMARY KEY,
	seq BIGINT NOT NULL DEFAULT 0
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,

	`CREATE TABLE IF NOT EXISTS vehicles (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	registration_number VARCHAR(100) NOT NULL,
	make VARCHAR(100) NOT NULL,
	model VARCHAR(100) NOT NULL,
	year INT NOT NULL,
	color VARCHAR(50),
	mileage DOUBLE NOT NULL DEFAULT 0,
	vehicle_type VARCHAR(50) NOT NULL DEFAULT 'Company-owned',
	vendor_name VARCHAR(255),
	vendor_contact VARCHAR(255),
	vendor_contract_start DATE,
	vendor_contract_end DATE,
	vendor_daily_rate DOUBLE,
	status VARCHAR(50) NOT NULL DEFAULT 'available',
	daily_rate DOUBLE NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_registration (registration_number)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS vehicle_maintenance_logs (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	vehicle_id BIGINT NOT NULL,
	log_date DATE NOT NULL,
	description TEXT NOT NULL,
	cost DOUBLE NOT NULL DEFAULT 0,
	performed_by VARCHAR(255),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_vehicle (vehicle_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS outsourced_vehicles (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	registration_number VARCHAR(100) NOT NULL,
	make VARCHAR(100) NOT NULL,
	model VARCHAR(100) NOT NULL,
	year INT NOT NULL,
	vendor_name VARCHAR(255) NOT NULL,
	vendor_phone VARCHAR(100),
	vendor_email VARCHAR(255),
	vendor_address VARCHAR(500),
	daily_rate DOUBLE NOT NULL,
	security_deposit DOUBLE NOT NULL DEFAULT 0,
	contract_start_date DATE NOT NULL,
	contract_end_date DATE,
	status VARCHAR(50) NOT NULL DEFAULT 'active',
	total_usage_days INT NOT NULL DEFAULT 0,
	total_payable DOUBLE NOT NULL DEFAULT 0,
	paid_amount DOUBLE NOT NULL DEFAULT 0,
	balance_amount DOUBLE NOT NULL DEFAULT 0,
	notes TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS customers (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	type VARCHAR(50) NOT NULL,
	name VARCHAR(255) NOT NULL,
	cnic VARCHAR(100),
	company_registration VARCHAR(100),
	license_number VARCHAR(100),
	phone VARCHAR(100) NOT NULL,
	email VARCHAR(255),
	address VARCHAR(500),
	emergency_name VARCHAR(255),
	emergency_phone VARCHAR(100),
	emergency_relation VARCHAR(100),
	total_bookings INT NOT NULL DEFAULT 0,
	total_amount_paid DOUBLE NOT NULL DEFAULT 0,
	outstanding_balance DOUBLE NOT NULL DEFAULT 0,
	credit_limit DOUBLE NOT NULL DEFAULT 0,
	status VARCHAR(50) NOT NULL DEFAULT 'active',
	notes TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS drivers (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	cnic VARCHAR(100) NOT NULL,
	license_number VARCHAR(100) NOT NULL,
	phone VARCHAR(100) NOT NULL,
	email VARCHAR(255),
	address VARCHAR(500),
	emergency_name VARCHAR(255),
	emergency_phone VARCHAR(100),
	emergency_relation VARCHAR(100),
	assigned_vehicle_id BIGINT,
	local_daily_rate DOUBLE NOT NULL DEFAULT 1000,
	outstation_daily_rate DOUBLE NOT NULL DEFAULT 1500,
	overtime_threshold_hours DOUBLE NOT NULL DEFAULT 12,
	overtime_hourly_rate DOUBLE NOT NULL DEFAULT 200,
	monthly_parking_allowance DOUBLE NOT NULL DEFAULT 2000,
	night_food_allowance DOUBLE NOT NULL DEFAULT 500,
	outstation_allowance DOUBLE NOT NULL DEFAULT 1000,
	status VARCHAR(50) NOT NULL DEFAULT 'active',
	joining_date DATE NOT NULL,
	notes TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_cnic (cnic)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_number VARCHAR(20) NOT NULL,
	customer_id BIGINT NOT NULL,
	vehicle_id BIGINT,
	outsourced_vehicle_id BIGINT,
	driver_id BIGINT,
	rental_type VARCHAR(50) NOT NULL,
	route_name VARCHAR(255),
	is_outstation TINYINT(1) NOT NULL DEFAULT 0,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	actual_return_date DATE,
	duty_hours_scheduled DOUBLE NOT NULL DEFAULT 12,
	duty_hours_actual DOUBLE NOT NULL DEFAULT 0,
	duty_hours_overtime DOUBLE NOT NULL DEFAULT 0,
	total_days INT NOT NULL,
	rent_per_day DOUBLE NOT NULL,
	total_rent DOUBLE NOT NULL,
	driver_daily_rate DOUBLE NOT NULL DEFAULT 0,
	driver_overtime_amount DOUBLE NOT NULL DEFAULT 0,
	driver_total_amount DOUBLE NOT NULL DEFAULT 0,
	vendor_daily_rate DOUBLE,
	vendor_total_amount DOUBLE,
	tax_deduction_percentage DOUBLE NOT NULL DEFAULT 0,
	tax_deduction_amount DOUBLE NOT NULL DEFAULT 0,
	mileage_start DOUBLE NOT NULL DEFAULT 0,
	mileage_end DOUBLE,
	mileage_total DOUBLE NOT NULL DEFAULT 0,
	expense_fuel DOUBLE NOT NULL DEFAULT 0,
	expense_toll DOUBLE NOT NULL DEFAULT 0,
	expense_maintenance DOUBLE NOT NULL DEFAULT 0,
	expense_other DOUBLE NOT NULL DEFAULT 0,
	expense_total DOUBLE NOT NULL DEFAULT 0,
	allowance_overtime_hours DOUBLE NOT NULL DEFAULT 0,
	allowance_overtime_amount DOUBLE NOT NULL DEFAULT 0,
	allowance_food_nights DOUBLE NOT NULL DEFAULT 0,
	allowance_food_amount DOUBLE NOT NULL DEFAULT 0,
	allowance_outstation_nights DOUBLE NOT NULL DEFAULT 0,
	allowance_outstation_amount DOUBLE NOT NULL DEFAULT 0,
	allowance_parking DOUBLE NOT NULL DEFAULT 0,
	allowance_total DOUBLE NOT NULL DEFAULT 0,
	payment_total_amount DOUBLE NOT NULL DEFAULT 0,
	payment_received_amount DOUBLE NOT NULL DEFAULT 0,
	payment_balance_amount DOUBLE NOT NULL DEFAULT 0,
	security_deposit DOUBLE NOT NULL DEFAULT 0,
	status VARCHAR(50) NOT NULL DEFAULT 'confirmed',
	payment_status VARCHAR(50) NOT NULL DEFAULT 'unpaid',
	notes TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_booking_number (booking_number),
	KEY idx_customer (customer_id),
	KEY idx_vehicle (vehicle_id),
	KEY idx_driver (driver_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS payments (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id BIGINT,
	customer_id BIGINT,
	type VARCHAR(50) NOT NULL,
	category VARCHAR(100) NOT NULL,
	description VARCHAR(500) NOT NULL,
	amount DOUBLE NOT NULL,
	paid_amount DOUBLE NOT NULL DEFAULT 0,
	balance_amount DOUBLE NOT NULL DEFAULT 0,
	due_date DATE,
	payment_date DATE,
	payment_method VARCHAR(50) NOT NULL DEFAULT 'cash',
	reference_number VARCHAR(100),
	status VARCHAR(50) NOT NULL DEFAULT 'pending',
	notes TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_booking (booking_id),
	KEY idx_customer (customer_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS expenses (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id BIGINT,
	vehicle_id BIGINT,
	driver_id BIGINT,
	category VARCHAR(100) NOT NULL,
	description VARCHAR(500) NOT NULL,
	amount DOUBLE NOT NULL,
	expense_date DATE NOT NULL,
	receipt_number VARCHAR(100),
	vendor VARCHAR(255),
	payment_method VARCHAR(50) NOT NULL DEFAULT 'Cash',
	status VARCHAR(50) NOT NULL DEFAULT 'pending',
	approved_by VARCHAR(255),
	approval_date DATE,
	notes TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_expense_booking (booking_id),
	KEY idx_expense_vehicle (vehicle_id),
	KEY idx_expense_driver (driver_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
}
