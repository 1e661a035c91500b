package db

import (
	"fmt"

	"gorm.io/gorm"
)

// Trip and payment rows keep their dredger/transporter references loose
// (no FK): deleting an entity must not touch the historical log, and a trip
// with a stale reference still carries its own rate/capacity snapshots.
// Dates are stored in the canonical YYYY-MM-DD text form the engine sorts
// on; the spreadsheet importer normalizes before writing.
var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS dredgers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		code VARCHAR(32) NOT NULL,
		name VARCHAR(128) NOT NULL,
		rate_per_cbm NUMERIC(18,2) NOT NULL DEFAULT 0,
		status VARCHAR(16) NOT NULL DEFAULT 'active',
		contractor VARCHAR(128) NOT NULL DEFAULT '',
		contract_number VARCHAR(64) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_dredgers_code ON dredgers (code);`,
	`CREATE TABLE IF NOT EXISTS transporters (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		code VARCHAR(32) NOT NULL,
		name VARCHAR(128) NOT NULL,
		rate_per_cbm NUMERIC(18,2) NOT NULL DEFAULT 0,
		status VARCHAR(16) NOT NULL DEFAULT 'active',
		contractor VARCHAR(128) NOT NULL DEFAULT '',
		contract_number VARCHAR(64) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_transporters_code ON transporters (code);`,
	`CREATE TABLE IF NOT EXISTS trucks (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		transporter_id UUID NOT NULL REFERENCES transporters(id) ON DELETE CASCADE,
		name VARCHAR(64) NOT NULL DEFAULT '',
		plate_number VARCHAR(32) NOT NULL,
		capacity_cbm NUMERIC(18,3) NOT NULL DEFAULT 0,
		status VARCHAR(16) NOT NULL DEFAULT 'active'
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_trucks_transporter_plate ON trucks (transporter_id, plate_number);`,
	`CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		date VARCHAR(16) NOT NULL,
		dredger_id UUID NOT NULL,
		transporter_id UUID NOT NULL,
		truck_id UUID REFERENCES trucks(id) ON DELETE SET NULL,
		plate_number VARCHAR(32) NOT NULL DEFAULT '',
		trips INTEGER NOT NULL DEFAULT 0,
		capacity_cbm NUMERIC(18,3) NOT NULL DEFAULT 0,
		total_volume NUMERIC(18,3) NOT NULL DEFAULT 0,
		dredger_rate NUMERIC(18,2) NOT NULL DEFAULT 0,
		transporter_rate NUMERIC(18,2) NOT NULL DEFAULT 0,
		dumping_location VARCHAR(128) NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_date ON trips (date);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_dredger_id ON trips (dredger_id);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_transporter_id ON trips (transporter_id);`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		date VARCHAR(16) NOT NULL,
		entity_type VARCHAR(16) NOT NULL,
		entity_id UUID NOT NULL,
		amount NUMERIC(18,2) NOT NULL DEFAULT 0,
		payment_method VARCHAR(64) NOT NULL DEFAULT 'Bank Transfer',
		reference VARCHAR(64) NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_payments_entity ON payments (entity_type, entity_id);`,
	`CREATE INDEX IF NOT EXISTS idx_payments_date ON payments (date);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
