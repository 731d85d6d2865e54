package report

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

// DBSink persists report entries to a MySQL table so multiple runs across
// machines can be collected in one place.
type DBSink struct {
	db    *sql.DB
	table string
}

// SinkConfig describes the MySQL destination for persisted reports.
type SinkConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	Database string `yaml:"database" mapstructure:"database"`
	Table    string `yaml:"table" mapstructure:"table"`
}

// BuildDSN renders the go-sql-driver DSN for the sink configuration.
func (c *SinkConfig) BuildDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

// OpenSink connects to MySQL and returns a sink writing to cfg.Table
// ("pojocheck_report" when empty).
func OpenSink(ctx context.Context, cfg *SinkConfig) (*DBSink, error) {
	db, err := sql.Open("mysql", cfg.BuildDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open report database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to report database: %w", err)
	}
	return NewDBSink(db, cfg.Table), nil
}

// NewDBSink wraps an existing connection. An empty table name defaults to
// "pojocheck_report".
func NewDBSink(db *sql.DB, table string) *DBSink {
	if table == "" {
		table = "pojocheck_report"
	}
	return &DBSink{db: db, table: table}
}

// EnsureSchema creates the report table if it does not exist.
func (s *DBSink) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` ("+
		"`id` BIGINT UNSIGNED NOT NULL AUTO_INCREMENT, "+
		"`class` VARCHAR(255) NOT NULL, "+
		"`check_kind` VARCHAR(32) NOT NULL, "+
		"`message` TEXT NOT NULL, "+
		"`created_at` TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, "+
		"PRIMARY KEY (`id`), KEY `idx_class` (`class`))", s.table)
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create report table: %w", err)
	}
	return nil
}

// Persist writes a snapshot of the store into the table, one row per entry,
// inside a single transaction.
func (s *DBSink) Persist(ctx context.Context, store *Store) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := fmt.Sprintf("INSERT INTO `%s` (`class`, `check_kind`, `message`) VALUES (?, ?, ?)", s.table)
	for _, class := range store.Classes() {
		for _, kind := range renderOrder {
			for _, msg := range store.Messages(class, kind) {
				if _, err := tx.ExecContext(ctx, query, class, string(kind), msg); err != nil {
					tx.Rollback()
					return fmt.Errorf("failed to insert report entry: %w", err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit report entries: %w", err)
	}
	return nil
}

// Load reads every persisted entry back into a fresh store, in insertion
// order.
func (s *DBSink) Load(ctx context.Context) (*Store, error) {
	query := fmt.Sprintf("SELECT `class`, `check_kind`, `message` FROM `%s` ORDER BY `id`", s.table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query report entries: %w", err)
	}
	defer rows.Close()

	store := NewStore()
	for rows.Next() {
		var class, kind, message string
		if err := rows.Scan(&class, &kind, &message); err != nil {
			return nil, fmt.Errorf("failed to scan report entry: %w", err)
		}
		store.Record(Kind(kind), class, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report entries: %w", err)
	}
	return store, nil
}

// Close releases the underlying connection.
func (s *DBSink) Close() error {
	return s.db.Close()
}
