// Package testutil provides an in-memory database for tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The production schema relies on gen_random_uuid() column defaults,
// which sqlite cannot express, so the tables are created by hand here.
// Tests must set IDs explicitly.
var schema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT,
		email TEXT UNIQUE,
		password TEXT,
		role TEXT DEFAULT 'User',
		is_verified NUMERIC DEFAULT 0,
		is_active NUMERIC DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE email_verifications (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		email TEXT,
		code TEXT,
		attempts INTEGER DEFAULT 0,
		used NUMERIC DEFAULT 0,
		expires_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE websites (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		name TEXT,
		brand TEXT,
		website_type TEXT,
		description TEXT,
		slug TEXT,
		status TEXT DEFAULT 'active',
		is_deleted NUMERIC DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE webpages (
		id TEXT PRIMARY KEY,
		website_id TEXT,
		name TEXT,
		slug TEXT,
		status TEXT DEFAULT 'active',
		page_order INTEGER,
		is_default NUMERIC DEFAULT 0,
		is_deleted NUMERIC DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE webpage_sections (
		id TEXT PRIMARY KEY,
		webpage_id TEXT,
		name TEXT,
		section_type TEXT,
		section_order INTEGER,
		status TEXT DEFAULT 'active',
		settings TEXT,
		is_default NUMERIC DEFAULT 0,
		is_deleted NUMERIC DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE section_contents (
		id TEXT PRIMARY KEY,
		section_id TEXT UNIQUE,
		title TEXT,
		subtitle TEXT,
		description TEXT,
		media TEXT,
		buttons TEXT,
		list_items TEXT,
		custom_data TEXT,
		status TEXT DEFAULT 'active',
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE website_themes (
		id TEXT PRIMARY KEY,
		website_id TEXT UNIQUE,
		theme_mode TEXT DEFAULT 'light',
		colors TEXT,
		typography TEXT DEFAULT 'Sans-Serif',
		custom_font TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
}

// NewTestDB opens an isolated in-memory database with the full schema
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// Every pool connection would get its own :memory: database, so the
	// pool is pinned to a single connection
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access test database pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create test schema: %v", err)
		}
	}

	return db
}
