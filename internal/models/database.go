package models

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	sqlitecloud "github.com/sqlitecloud/sqlitecloud-go"
)

// Database is the SQLite Cloud connection backing the analytics run log
type Database struct {
	db *sqlitecloud.SQCloud
}

// NewDatabase opens the run log at dsn and ensures its schema exists
func NewDatabase(dsn string) (*Database, error) {
	log.Info().Str("dsn", redactDSN(dsn)).Msg("opening run log")

	conn, err := sqlitecloud.Connect(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite Cloud: %w", err)
	}

	runLog := &Database{db: conn}
	if err := runLog.CreateAnalyticsRunsTable(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create analytics_runs table: %w", err)
	}

	return runLog, nil
}

// redactDSN drops everything after the apikey parameter
func redactDSN(dsn string) string {
	if prefix, _, found := strings.Cut(dsn, "apikey="); found {
		return prefix + "apikey=***"
	}
	return dsn
}

func (d *Database) executeSQL(sql string, args ...interface{}) error {
	if len(args) == 0 {
		return d.db.Execute(sql)
	}
	return d.db.ExecuteArray(sql, args)
}

// Close closes the connection; safe on a zero Database
func (d *Database) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}
