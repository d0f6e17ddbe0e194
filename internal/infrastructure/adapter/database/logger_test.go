package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType(`  select * from "users"`))
	assert.Equal(t, "INSERT", extractQueryType(`INSERT INTO "stakes" ...`))
	assert.Equal(t, "", extractQueryType(`BEGIN`))
}

func TestExtractTableName(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{`SELECT * FROM "users" WHERE id = $1`, "users"},
		{`INSERT INTO "ledger_entries" ("id") VALUES ($1)`, "ledger_entries"},
		{`UPDATE "propositions" SET "status"=$1`, "propositions"},
		{`SET TRANSACTION ISOLATION LEVEL SERIALIZABLE`, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractTableName(tt.sql), tt.sql)
	}
}

func TestParseGormLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, parseGormLevel("silent"))
	assert.Equal(t, logger.Warn, parseGormLevel("WARN"))
	assert.Equal(t, logger.Info, parseGormLevel("debug"))
}
