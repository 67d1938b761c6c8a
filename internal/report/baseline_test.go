package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5t3ph/metaschema/pkg/metaschema"
)

func findingWithID(id string, kind metaschema.FindingKind) metaschema.Finding {
	return metaschema.Finding{ID: uuid.MustParse(id), Kind: kind, Message: string(kind)}
}

func TestBaseline_RoundTripAndFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")
	known := findingWithID("00000000-0000-5000-8000-000000000001", metaschema.FindingInvalidKey)
	fresh := findingWithID("00000000-0000-5000-8000-000000000002", metaschema.FindingTypeMismatch)

	require.NoError(t, WriteBaseline(path, []metaschema.Finding{known, known}))

	b, err := LoadBaseline(path)
	require.NoError(t, err)
	assert.Len(t, b, 1)
	assert.True(t, b.Contains(known))

	kept, suppressed := b.Filter([]metaschema.Finding{known, fresh})
	assert.Equal(t, []metaschema.Finding{fresh}, kept)
	assert.Equal(t, 1, suppressed)
}

func TestLoadBaseline_Missing(t *testing.T) {
	b, err := LoadBaseline(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestLoadBaseline_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadBaseline(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, metaschema.ErrInvalidConfig))
}

func TestFiltered_ForwardsOnlyNewFindings(t *testing.T) {
	known := findingWithID("00000000-0000-5000-8000-000000000001", metaschema.FindingInvalidKey)
	fresh := findingWithID("00000000-0000-5000-8000-000000000002", metaschema.FindingTypeMismatch)

	collector := NewCollector()
	f := NewFiltered(collector, Baseline{known.ID: {}})
	f.Report([]metaschema.Finding{known, fresh})
	f.Report([]metaschema.Finding{known})

	assert.Equal(t, []metaschema.Finding{fresh}, collector.Findings())
	assert.Equal(t, 2, f.Suppressed())
}

func TestMultiAndWriteJSON(t *testing.T) {
	a, b := NewCollector(), NewCollector()
	finding := findingWithID("00000000-0000-5000-8000-000000000003", metaschema.FindingMisplacedKey)
	Multi{a, b}.Report([]metaschema.Finding{finding})

	assert.Len(t, a.Findings(), 1)
	assert.Len(t, b.Findings(), 1)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, a.Findings()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "misplaced-key", decoded[0]["kind"])
	assert.Equal(t, "00000000-0000-5000-8000-000000000003", decoded[0]["id"])

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
