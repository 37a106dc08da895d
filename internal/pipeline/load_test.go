package pipeline

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSONKeepsNumericFidelity(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.json", `{"listCount": 12345678901234567890}`)

	value, err := LoadJSON(path)
	require.NoError(t, err)

	m := value.(map[string]interface{})
	assert.Equal(t, json.Number("12345678901234567890"), m["listCount"])
}

func TestLoadJSONMissingFile(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "absent.json"))
	var ioErr *IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestLoadJSONMalformed(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", `{"unterminated": `)

	_, err := LoadJSON(path)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoadJSONRejectsTrailingData(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "trailing.json", `{"a": 1} {"b": 2}`)

	_, err := LoadJSON(path)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
