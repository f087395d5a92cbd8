package postgresql

import (
	"context"
	"testing"

	"github.com/ScriptedSpythoN/demoos/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type stubTx struct {
	pgx.Tx
}

func TestGetQuerierPrefersContextTransaction(t *testing.T) {
	db := &database.DB{}
	tx := stubTx{}

	ctx := context.WithValue(context.Background(), "tx", pgx.Tx(tx))

	q := GetQuerier(ctx, db)
	assert.Equal(t, database.Querier(tx), q)
}

func TestGetQuerierFallsBackToPool(t *testing.T) {
	db := &database.DB{}

	q := GetQuerier(context.Background(), db)
	assert.Equal(t, database.Querier(db.Pool), q)
}
