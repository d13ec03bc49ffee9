// repository/schema.go
package repository

import "fmt"

// EnsureSchema creates the tables the application needs if they do not exist
// yet. The fee uniqueness constraint on (member_id, sport_id, period) and the
// allocation uniqueness on fee_id live here so concurrent writers get a
// well-defined conflict instead of duplicate rows.
func EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS promotions (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			kind VARCHAR(20) NOT NULL,
			value NUMERIC(10,2) NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS members (
			id BIGSERIAL PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			document VARCHAR(20) NOT NULL,
			email VARCHAR(255) NOT NULL DEFAULT '',
			phone VARCHAR(50) NOT NULL DEFAULT '',
			active BOOLEAN NOT NULL DEFAULT TRUE,
			promotion_id BIGINT REFERENCES promotions(id),
			responsible_member_id BIGINT REFERENCES members(id),
			registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS sports (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			trainer_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			insurance_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			social_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			monthly_amount NUMERIC(10,2) NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS enrollments (
			id BIGSERIAL PRIMARY KEY,
			member_id BIGINT NOT NULL REFERENCES members(id),
			sport_id BIGINT NOT NULL REFERENCES sports(id),
			enrolled_at DATE NOT NULL,
			cancelled_at DATE
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id BIGSERIAL PRIMARY KEY,
			receipt_number VARCHAR(36) NOT NULL UNIQUE,
			payer_id BIGINT NOT NULL REFERENCES members(id),
			payment_date DATE NOT NULL,
			method VARCHAR(20) NOT NULL,
			trainer_total NUMERIC(10,2) NOT NULL DEFAULT 0,
			insurance_total NUMERIC(10,2) NOT NULL DEFAULT 0,
			social_total NUMERIC(10,2) NOT NULL DEFAULT 0,
			grand_total NUMERIC(10,2) NOT NULL DEFAULT 0,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS fees (
			id BIGSERIAL PRIMARY KEY,
			member_id BIGINT NOT NULL REFERENCES members(id),
			sport_id BIGINT NOT NULL REFERENCES sports(id),
			period DATE NOT NULL,
			trainer_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			insurance_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			social_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			final_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			state VARCHAR(10) NOT NULL,
			due_date DATE NOT NULL,
			generated_date DATE NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			payment_id BIGINT REFERENCES payments(id),
			CONSTRAINT uk_fee_member_sport_period UNIQUE (member_id, sport_id, period),
			CONSTRAINT ck_fee_state CHECK (state IN ('PENDING', 'OVERDUE', 'PAID'))
		)`,
		`CREATE TABLE IF NOT EXISTS payment_allocations (
			id BIGSERIAL PRIMARY KEY,
			payment_id BIGINT NOT NULL REFERENCES payments(id),
			fee_id BIGINT NOT NULL REFERENCES fees(id),
			applied_amount NUMERIC(10,2) NOT NULL,
			CONSTRAINT uk_allocation_fee UNIQUE (fee_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %v", err)
		}
	}
	return nil
}
