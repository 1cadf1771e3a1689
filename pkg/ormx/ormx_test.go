package ormx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetDSN(t *testing.T) {
	c := DBConfig{DbType: "mysql", Host: "db", Port: 3306, Username: "u", Password: "p", Database: "genui", Charset: "utf8mb4"}
	require.Equal(t, "u:p@tcp(db:3306)/genui?parseTime=True&loc=Local&charset=utf8mb4", c.GetDSN())

	require.Equal(t, "file::memory:?cache=shared", (&DBConfig{DbType: "sqlite"}).GetDSN())
	require.Equal(t, "todos.db", (&DBConfig{DbType: "SQLite", Database: "todos.db"}).GetDSN())
	require.Equal(t, "custom", (&DBConfig{DbType: "mysql", DSN: "custom"}).GetDSN())
}

func TestNewDBClientSqlite(t *testing.T) {
	db, err := NewDBClient(DBConfig{DbType: "sqlite", DSN: "file::memory:"})
	require.NoError(t, err)
	defer Close(db)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	require.Equal(t, 1, one)
}

func TestNewDBClientUnsupported(t *testing.T) {
	_, err := NewDBClient(DBConfig{DbType: "oracle"})
	require.Error(t, err)
}
