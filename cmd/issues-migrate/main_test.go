//go:build unit

package main

import (
	"testing"

	"github.com/lerenn/issues-migrate/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetSelectionFlags() {
	selectAll = false
	selectOpen = false
	selectClosed = false
	issueNumbers = nil
}

func TestMigrationFlags_Filter(t *testing.T) {
	defer resetSelectionFlags()

	resetSelectionFlags()
	selectOpen = true

	flags, err := migrationFlags()
	require.NoError(t, err)
	assert.Equal(t, config.FilterOpen, flags.Filter)
}

func TestMigrationFlags_ConflictingFilters(t *testing.T) {
	defer resetSelectionFlags()

	resetSelectionFlags()
	selectAll = true
	selectClosed = true

	_, err := migrationFlags()
	assert.Error(t, err)
}

func TestHasConfiguredToken(t *testing.T) {
	assert.False(t, hasConfiguredToken(&config.Config{}))

	assert.True(t, hasConfiguredToken(&config.Config{
		Login: config.LoginConfig{Token: "t"},
	}))

	assert.True(t, hasConfiguredToken(&config.Config{
		Repositories: map[string]config.RepositoryConfig{
			"orga/repo1": {Token: "t"},
		},
	}))
}
