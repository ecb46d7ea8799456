package db

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS record_cache")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, Migrate(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied"))

	err = Migrate(context.Background(), mock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply schema")
	assert.Contains(t, err.Error(), "permission denied")
}

func TestStatements_TargetRecordCache(t *testing.T) {
	for name, sql := range Statements {
		if name == StmtHealthCheck || name == StmtCacheNotify {
			continue
		}
		assert.True(t, strings.Contains(sql, "record_cache"), "statement %s", name)
	}
	assert.Contains(t, Statements[StmtCacheNotify], "record_cache_invalidated")
}
