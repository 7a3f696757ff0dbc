package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Ссылка estimate_id в ведомостях материалов и механизмов намеренно
// не закреплена constraint'ом: существование сметы проверяет приложение
// перед вставкой, а удаление сметы зависимые строки не трогает.
var migrationStatements = []string{
	`CREATE SCHEMA IF NOT EXISTS psd;`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role VARCHAR(50) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS psd.estimate_documentation (
		estimate_id SERIAL PRIMARY KEY,
		price_code_resource_codes VARCHAR(100) NOT NULL,
		work_expense_name VARCHAR(300) NOT NULL,
		unit_of_measurement VARCHAR(50) NOT NULL,
		quantity NUMERIC(18,4) NOT NULL,
		unit_price_rub NUMERIC(18,2) NOT NULL,
		adjustment_coefficients TEXT,
		winter_increase_coefficients TEXT,
		total_base_cost_rub NUMERIC(18,2) NOT NULL,
		recalc_indices_standards TEXT,
		total_current_cost_rub NUMERIC(18,2) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS psd.main_materials_equipment (
		material_equipment_id SERIAL PRIMARY KEY,
		estimate_id INTEGER NOT NULL,
		name_technical_specification VARCHAR(300) NOT NULL,
		type_brand_size VARCHAR(100) NOT NULL,
		unit_of_measurement VARCHAR(50) NOT NULL,
		quantity NUMERIC(18,4) NOT NULL,
		installation_location_method TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS materials_equipment (
		material_equipment_id SERIAL PRIMARY KEY,
		name VARCHAR(300) NOT NULL,
		type_brand_size VARCHAR(100) NOT NULL,
		unit_of_measurement VARCHAR(50) NOT NULL,
		quantity NUMERIC(18,4) NOT NULL,
		supplier VARCHAR(200),
		unit_cost_rub NUMERIC(18,2),
		total_cost_rub NUMERIC(18,2),
		storage_location VARCHAR(200)
	);`,
	`CREATE TABLE IF NOT EXISTS psd.main_mechanisms (
		mechanism_id SERIAL PRIMARY KEY,
		estimate_id INTEGER NOT NULL,
		mechanism_name VARCHAR(300) NOT NULL,
		type_brand_load_capacity VARCHAR(100) NOT NULL,
		quantity INTEGER NOT NULL,
		location VARCHAR(200) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS mechanisms (
		mechanism_id SERIAL PRIMARY KEY,
		mechanism_name VARCHAR(300) NOT NULL,
		type_brand_load_capacity VARCHAR(100) NOT NULL,
		stock_quantity INTEGER NOT NULL,
		storage_location VARCHAR(200),
		site_quantity INTEGER,
		stock_remaining INTEGER
	);`,
	`CREATE TABLE IF NOT EXISTS psd.work_volumes (
		work_id SERIAL PRIMARY KEY,
		work_name VARCHAR(300) NOT NULL,
		unit_of_measurement VARCHAR(50) NOT NULL,
		quantity NUMERIC(18,4) NOT NULL,
		notes VARCHAR(1000)
	);`,
	`CREATE TABLE IF NOT EXISTS builders_specialists (
		specialist_id SERIAL PRIMARY KEY,
		full_name VARCHAR(300) NOT NULL,
		position_specialty VARCHAR(100) NOT NULL,
		experience_years INTEGER NOT NULL,
		section VARCHAR(100) NOT NULL,
		salary NUMERIC(18,2) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS itr (
		worker_id SERIAL PRIMARY KEY,
		full_name VARCHAR(300) NOT NULL,
		position VARCHAR(100) NOT NULL,
		experience_years INTEGER NOT NULL,
		section VARCHAR(100) NOT NULL,
		salary NUMERIC(18,2) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS aup (
		staff_id SERIAL PRIMARY KEY,
		full_name VARCHAR(300) NOT NULL,
		position VARCHAR(100) NOT NULL,
		experience_years INTEGER NOT NULL,
		section VARCHAR(100) NOT NULL,
		salary NUMERIC(18,2) NOT NULL
	);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
