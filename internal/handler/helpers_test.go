package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/slotforge/internal/pool"
	fx "github.com/osse101/slotforge/internal/testing/slotfixture"
)

func buildTestSet(t *testing.T) *pool.Set {
	t.Helper()
	pt := fx.Consistency()
	tables := pool.Tables{Board: pt.Board, Symbols: pt.Symbols, Paylines: pt.Paylines, Outcomes: pt.Outcomes, Generation: 1}
	res, err := pool.NewBuilder(nil).Build(context.Background(), tables, 5, pool.Options{Seed: 1})
	require.NoError(t, err)
	return res.Set
}
