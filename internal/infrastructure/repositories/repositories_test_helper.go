package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'USER',
		email_verified BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		slug TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL,
		legal_name TEXT,
		verification_status TEXT NOT NULL DEFAULT 'UNVERIFIED',
		verify_method TEXT,
		verify_token TEXT,
		verify_marker TEXT,
		verify_domain TEXT,
		verified_platforms TEXT,
		domain_verified_at DATETIME,
		platform_verified_at DATETIME,
		verify_checked_at DATETIME,
		plan TEXT NOT NULL DEFAULT 'FREE',
		plan_status TEXT NOT NULL DEFAULT 'ACTIVE',
		visibility TEXT NOT NULL DEFAULT 'UNPUBLISHED',
		unpublish_reason TEXT,
		retention_until DATETIME,
		deletion_locked_at DATETIME,
		deletion_locked_by TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createDomainClaimTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE domain_claims (
		id TEXT PRIMARY KEY,
		domain TEXT NOT NULL UNIQUE,
		user_id TEXT NOT NULL,
		txt_token TEXT NOT NULL,
		dns_verified BOOLEAN NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'PENDING',
		email_issued BOOLEAN NOT NULL DEFAULT 0,
		email_token TEXT,
		email_verified BOOLEAN NOT NULL DEFAULT 0,
		verified_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPlatformAccountTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE platform_accounts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		profile_id TEXT NOT NULL,
		provider TEXT NOT NULL,
		external_id TEXT NOT NULL,
		handle TEXT,
		url TEXT,
		status TEXT NOT NULL DEFAULT 'PENDING',
		method TEXT NOT NULL,
		platform_context TEXT,
		scopes TEXT,
		verified_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (provider, external_id)
	);`)
}

func createBioCodeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE bio_codes (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		platform TEXT NOT NULL,
		code TEXT NOT NULL,
		profile_url TEXT,
		status TEXT NOT NULL DEFAULT 'ACTIVE',
		expires_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
}

func createChangeLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE change_log (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		profile_id TEXT NOT NULL,
		entity_kind TEXT NOT NULL,
		entity_id TEXT NOT NULL,
		action TEXT NOT NULL,
		field TEXT,
		"before" TEXT,
		"after" TEXT,
		created_at DATETIME
	);`)
}
