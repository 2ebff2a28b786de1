package db

import (
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/passrank/passrank-api/pkg/util"
)

var Db *sql.DB

//go:embed migrations/*.sql
var migrations embed.FS

// Top entries of breached password lists, one per line. Seeded into the
// common_passwords table on first start.
//
//go:embed common_passwords.txt
var commonPasswords string

func InitDB() error {
	db, err := sql.Open("sqlite3", util.Config.DBPath)
	if err != nil {
		return err
	}

	d, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, fmt.Sprintf("sqlite3://%s", util.Config.DBPath))
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return err
	}

	Db = db

	return seedCommonPasswords()
}

func seedCommonPasswords() error {
	var count int
	if err := Db.QueryRow("SELECT COUNT(*) FROM common_passwords").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := Db.Begin()
	if err != nil {
		return err
	}

	for _, line := range strings.Split(commonPasswords, "\n") {
		pw := strings.TrimSpace(line)
		if pw == "" {
			continue
		}
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO common_passwords (password) VALUES (?)",
			strings.ToLower(pw),
		); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// IsCommon reports whether the password appears in the seeded breached-password
// list. Lookup is case-insensitive.
func IsCommon(password string) (bool, error) {
	var one int

	err := Db.QueryRow(
		"SELECT 1 FROM common_passwords WHERE password = ?",
		strings.ToLower(password),
	).Scan(&one)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
