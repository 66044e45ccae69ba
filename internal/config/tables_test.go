package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillpath/internal/roadmap"
	"github.com/jonathan/skillpath/internal/types"
)

func TestLoadAliasTable_FoldsKeysAndValues(t *testing.T) {
	path := writeTempFile(t, "aliases.json", `{"Node JS": "NodeJS", "k8s": "kubernetes"}`)

	table, err := LoadAliasTable(path)
	require.NoError(t, err)
	assert.Equal(t, "nodejs", table["node js"])
	assert.Equal(t, "kubernetes", table["k8s"])
}

func TestLoadAliasTable_EmptyPathMeansDefaults(t *testing.T) {
	table, err := LoadAliasTable("")
	require.NoError(t, err)
	assert.Nil(t, table)
}

func TestLoadAliasTable_RejectsNonStringValues(t *testing.T) {
	path := writeTempFile(t, "aliases.json", `{"k8s": 42}`)

	_, err := LoadAliasTable(path)

	var tableErr *TableError
	require.ErrorAs(t, err, &tableErr)
	assert.Equal(t, path, tableErr.Path)
}

func TestLoadEffortTable_ParsesTiers(t *testing.T) {
	path := writeTempFile(t, "efforts.json", `{"kubernetes": "intensive", "excel": "light"}`)

	table, err := LoadEffortTable(path)
	require.NoError(t, err)
	assert.Equal(t, types.EffortIntensive, table["kubernetes"])
	assert.Equal(t, types.EffortLight, table["excel"])
}

func TestLoadEffortTable_RejectsUnknownTier(t *testing.T) {
	path := writeTempFile(t, "efforts.json", `{"kubernetes": "herculean"}`)

	_, err := LoadEffortTable(path)

	var tableErr *TableError
	assert.ErrorAs(t, err, &tableErr)
}

func TestLoadPrerequisiteTable_Valid(t *testing.T) {
	path := writeTempFile(t, "prereqs.json", `{"Kubernetes": "Docker", "docker": "linux"}`)

	table, err := LoadPrerequisiteTable(path)
	require.NoError(t, err)
	assert.Equal(t, "docker", table["kubernetes"])
	assert.Equal(t, "linux", table["docker"])
}

func TestLoadPrerequisiteTable_RejectsCycle(t *testing.T) {
	path := writeTempFile(t, "prereqs.json", `{"a": "b", "b": "a"}`)

	_, err := LoadPrerequisiteTable(path)

	var cyclic *roadmap.CyclicPrerequisiteError
	assert.ErrorAs(t, err, &cyclic)
}

func TestLoadTables_NotJSON(t *testing.T) {
	path := writeTempFile(t, "aliases.json", `aliases go here`)

	_, err := LoadAliasTable(path)
	assert.Error(t, err)
}
