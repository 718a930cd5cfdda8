package store

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/migrations"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, migrations.DialectPostgres, NewPostgresErrorClassifier(), logger.Nop()), mock, conn
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestNewDB_PlaceholderByDialect(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{dialect: migrations.DialectPostgres, want: "SELECT login FROM users WHERE user_id = $1"},
		{dialect: migrations.DialectSQLite, want: "SELECT login FROM users WHERE user_id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			db := newDB(nil, tt.dialect, nil, logger.Nop())

			query, args, err := db.builder.Select("login").From("users").Where("user_id = ?", 7).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{7}, args)
			assert.Equal(t, tt.dialect, db.Dialect())
		})
	}
}
