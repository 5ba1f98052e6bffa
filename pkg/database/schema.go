package database

import (
	"context"
	"fmt"
)

// CreateSchema creates the database schema
func (db *DB) CreateSchema(ctx context.Context) error {
	db.logger.Info("Creating database schema...")

	if err := db.createExtensions(ctx); err != nil {
		return fmt.Errorf("failed to create extensions: %w", err)
	}

	tables := []string{
		createUsersTable,
		createAppointmentsTable,
		createMedicalHistoriesTable,
		createMessagesTable,
	}

	for _, table := range tables {
		if _, err := db.ExecContext(ctx, table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		createUsersIndexes,
		createAppointmentsIndexes,
		createMedicalHistoriesIndexes,
		createMessagesIndexes,
	}

	for _, index := range indexes {
		if _, err := db.ExecContext(ctx, index); err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}
	}

	db.logger.Info("Database schema created successfully")
	return nil
}

// createExtensions creates required PostgreSQL extensions
func (db *DB) createExtensions(ctx context.Context) error {
	extensions := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, ext := range extensions {
		if _, err := db.ExecContext(ctx, ext); err != nil {
			return fmt.Errorf("failed to create extension: %w", err)
		}
	}

	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	first_name VARCHAR(100) NOT NULL,
	last_name VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL UNIQUE,
	phone VARCHAR(10) NOT NULL UNIQUE,
	national_id VARCHAR(12) NOT NULL UNIQUE,
	dob DATE NOT NULL,
	gender VARCHAR(10) NOT NULL CHECK (gender IN ('Male', 'Female', 'Others')),
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(10) NOT NULL CHECK (role IN ('Admin', 'Patient', 'Doctor')),
	department VARCHAR(100),
	avatar_public_id VARCHAR(255),
	avatar_url VARCHAR(512),
	created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
	updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);`

const createAppointmentsTable = `
CREATE TABLE IF NOT EXISTS appointments (
	id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	first_name VARCHAR(100) NOT NULL,
	last_name VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(10) NOT NULL,
	national_id VARCHAR(12) NOT NULL,
	dob DATE NOT NULL,
	gender VARCHAR(10) NOT NULL,
	address TEXT NOT NULL,
	appointment_date TIMESTAMP WITH TIME ZONE NOT NULL,
	department VARCHAR(100) NOT NULL,
	doctor_first_name VARCHAR(100) NOT NULL,
	doctor_last_name VARCHAR(100) NOT NULL,
	has_visited BOOLEAN NOT NULL DEFAULT FALSE,
	status VARCHAR(20) NOT NULL DEFAULT 'Pending'
		CHECK (status IN ('Pending', 'Accepted', 'Rejected', 'Confirmed')),
	payment_status VARCHAR(20) NOT NULL DEFAULT 'pending'
		CHECK (payment_status IN ('pending', 'paid', 'failed', 'refunded')),
	payment_method VARCHAR(10),
	paid_at TIMESTAMP WITH TIME ZONE,
	transaction_id VARCHAR(64),
	checkout_session_id VARCHAR(64),
	amount NUMERIC(10,2) NOT NULL,
	doctor_id UUID NOT NULL REFERENCES users(id),
	patient_id UUID NOT NULL REFERENCES users(id),
	created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
	updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);`

const createMedicalHistoriesTable = `
CREATE TABLE IF NOT EXISTS medical_histories (
	id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	patient_id UUID NOT NULL REFERENCES users(id),
	doctor_id UUID NOT NULL REFERENCES users(id),
	appointment_id UUID REFERENCES appointments(id) ON DELETE SET NULL,
	symptoms TEXT NOT NULL,
	diagnosis TEXT NOT NULL,
	treatment TEXT NOT NULL,
	medications JSONB NOT NULL DEFAULT '[]',
	tests JSONB NOT NULL DEFAULT '[]',
	vital_signs JSONB NOT NULL DEFAULT '{}',
	allergies TEXT[] NOT NULL DEFAULT '{}',
	past_medical_history TEXT[] NOT NULL DEFAULT '{}',
	family_history TEXT[] NOT NULL DEFAULT '{}',
	notes TEXT,
	follow_up_date TIMESTAMP WITH TIME ZONE,
	status VARCHAR(20) NOT NULL DEFAULT 'Active'
		CHECK (status IN ('Active', 'Resolved', 'Chronic', 'Follow-up Required')),
	visit_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
	created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
	updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);`

const createMessagesTable = `
CREATE TABLE IF NOT EXISTS messages (
	id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	first_name VARCHAR(100) NOT NULL,
	last_name VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(10) NOT NULL,
	body TEXT NOT NULL,
	created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);`

const createUsersIndexes = `
CREATE INDEX IF NOT EXISTS idx_users_email_role ON users(email, role);
CREATE INDEX IF NOT EXISTS idx_users_role ON users(role);
CREATE INDEX IF NOT EXISTS idx_users_doctor_name ON users(first_name, last_name) WHERE role = 'Doctor';`

const createAppointmentsIndexes = `
CREATE INDEX IF NOT EXISTS idx_appointments_patient_id ON appointments(patient_id);
CREATE INDEX IF NOT EXISTS idx_appointments_doctor_id ON appointments(doctor_id);
CREATE INDEX IF NOT EXISTS idx_appointments_payment_status ON appointments(payment_status);
CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_checkout_session
	ON appointments(checkout_session_id) WHERE checkout_session_id IS NOT NULL;`

const createMedicalHistoriesIndexes = `
CREATE INDEX IF NOT EXISTS idx_medical_histories_patient_visit
	ON medical_histories(patient_id, visit_date DESC);
CREATE INDEX IF NOT EXISTS idx_medical_histories_doctor_visit
	ON medical_histories(doctor_id, visit_date DESC);`

const createMessagesIndexes = `
CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages(created_at DESC);`
