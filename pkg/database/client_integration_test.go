package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	util "github.com/conductor-ci/conductor/test/util"
)

func TestClientPing(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	client := NewClientFromEnt(entClient, db)

	stats, err := client.Ping(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.Open, 1)
}
