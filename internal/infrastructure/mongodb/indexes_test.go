package mongodb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfshare/shelfshare/internal/infrastructure/mongodb"
)

func TestGetAllIndexDefinitions(t *testing.T) {
	defs := mongodb.GetAllIndexDefinitions()
	require.NotEmpty(t, defs)

	collections := make(map[string]int)
	for _, def := range defs {
		assert.NotEmpty(t, def.Collection)
		assert.NotEmpty(t, def.Keys)
		assert.NotNil(t, def.Options)
		collections[def.Collection]++
	}

	// Both collections carry at least their unique primary key index.
	assert.GreaterOrEqual(t, collections[mongodb.CollectionUsers], 2)
	assert.GreaterOrEqual(t, collections[mongodb.CollectionBooks], 2)
}

func TestCreateAllIndexes(t *testing.T) {
	t.Skip("Requires MongoDB integration test setup")
}
