package dataset_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/izar/dataset"
)

// stubEngine implements dataset.Engine with an optional version.
type stubEngine struct {
	name    string
	version string
}

func (e stubEngine) Name() string { return e.name }

// versionedEngine additionally implements dataset.Versioned.
type versionedEngine struct{ stubEngine }

func (e versionedEngine) Version() string { return e.version }

// TestMakeAttrs_Minimal verifies the bare record: exactly one key,
// created_at, parseable as ISO-8601.
func TestMakeAttrs_Minimal(t *testing.T) {
	attrs := dataset.MakeAttrs(nil, nil)

	require.Len(t, attrs, 1)
	created, ok := attrs[dataset.AttrCreatedAt].(string)
	require.True(t, ok)

	_, err := time.Parse(time.RFC3339Nano, created)
	assert.NoError(t, err, "created_at must be ISO-8601 text")
}

// TestMakeAttrs_FreshTimestamp verifies the timestamp is read per call.
func TestMakeAttrs_FreshTimestamp(t *testing.T) {
	first := dataset.MakeAttrs(nil, nil)
	time.Sleep(2 * time.Millisecond)
	second := dataset.MakeAttrs(nil, nil)

	assert.NotEqual(t, first[dataset.AttrCreatedAt], second[dataset.AttrCreatedAt])
}

// TestMakeAttrs_EngineVersionFallback verifies the engine's own Version()
// is used when no matching module exists in the build info.
func TestMakeAttrs_EngineVersionFallback(t *testing.T) {
	engine := versionedEngine{stubEngine{name: "no-such-module-anywhere", version: "2.1.0"}}
	attrs := dataset.MakeAttrs(nil, engine)

	assert.Equal(t, "no-such-module-anywhere", attrs[dataset.AttrInferenceLibrary])
	assert.Equal(t, "2.1.0", attrs[dataset.AttrInferenceLibraryVersion])
}

// TestMakeAttrs_EngineNoVersion verifies the version key is omitted
// entirely when neither resolution path answers.
func TestMakeAttrs_EngineNoVersion(t *testing.T) {
	attrs := dataset.MakeAttrs(nil, stubEngine{name: "no-such-module-anywhere"})

	assert.Equal(t, "no-such-module-anywhere", attrs[dataset.AttrInferenceLibrary])
	assert.NotContains(t, attrs, dataset.AttrInferenceLibraryVersion)
}

// TestMakeAttrs_CallerWins verifies caller attributes override and extend
// the defaults on key collision.
func TestMakeAttrs_CallerWins(t *testing.T) {
	attrs := dataset.MakeAttrs(dataset.Attrs{
		dataset.AttrCreatedAt: "frozen",
		"note":                "eight schools",
	}, nil)

	assert.Equal(t, "frozen", attrs[dataset.AttrCreatedAt])
	assert.Equal(t, "eight schools", attrs["note"])
}
