package pipeline

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesnav-etl/internal/model"
)

// decodeValue parses a JSON literal the same way the file loader does,
// with numbers kept as json.Number.
func decodeValue(t *testing.T, literal string) interface{} {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(literal))
	dec.UseNumber()
	var v interface{}
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestExtractRowAllFields(t *testing.T) {
	rec := decodeValue(t, `{
		"companyName": "Acme Corp",
		"industry": "Software",
		"employeeCountRange": "51-200",
		"employeeDisplayCount": "120",
		"listCount": 3,
		"saved": true,
		"entityUrn": "urn:li:company:12345",
		"$recipeType": "com.linkedin.sales.deco.desktop.searchv2.DecoratedCompanySearchResult",
		"trackingId": "abc123",
		"description": "We build\nthings.",
		"companyPictureDisplayImage": {
			"rootUrl": "https://media.licdn.com/",
			"artifacts": [
				{"width": 100, "fileIdentifyingUrlPathSegment": "100.png"},
				{"width": 200, "fileIdentifyingUrlPathSegment": "200.png"}
			]
		},
		"spotlightBadges": [
			{"id": "HIRING", "displayValue": "Hiring on LinkedIn"}
		]
	}`)

	x := NewExtractor(false)
	row, reason := x.ExtractRow(rec, "/data/export_1.json")
	require.Equal(t, RejectNone, reason)

	assert.Equal(t, "Acme Corp", row["companyName"])
	assert.Equal(t, "Software", row["industry"])
	assert.Equal(t, "51-200", row["employeeCountRange"])
	assert.Equal(t, "120", row["employeeDisplayCount"])
	assert.Equal(t, "3", row["listCount"])
	assert.Equal(t, "true", row["saved"])
	assert.Equal(t, "urn:li:company:12345", row["entityUrn"])
	assert.Equal(t, "https://www.linkedin.com/sales/company/12345", row["linkedin_url"])
	assert.Equal(t, "com.linkedin.sales.deco.desktop.searchv2.DecoratedCompanySearchResult", row["recipeType"])
	assert.Equal(t, "abc123", row["trackingId"])
	assert.Equal(t, "We build things.", row["description"])
	assert.Equal(t, "https://media.licdn.com/100.png", row["logo_100"])
	assert.Equal(t, "https://media.licdn.com/200.png", row["logo_200"])
	assert.Equal(t, "HIRING: Hiring on LinkedIn", row["spotlightBadges"])
	assert.Equal(t, "export_1.json", row["source_file"])

	assert.Equal(t, 1, x.Stats.ValidRecords)
}

func TestExtractRowMissingFieldsFallBackToEmpty(t *testing.T) {
	rec := decodeValue(t, `{}`)

	x := NewExtractor(false)
	row, reason := x.ExtractRow(rec, "empty.json")
	require.Equal(t, RejectNone, reason)

	require.Len(t, row, len(CSVFields))
	for _, field := range CSVFields {
		if field == "source_file" {
			assert.Equal(t, "empty.json", row[field])
			continue
		}
		assert.Emptyf(t, row[field], "field %s should be empty", field)
	}
}

func TestExtractRowRejectsNonMapping(t *testing.T) {
	x := NewExtractor(false)

	for _, raw := range []interface{}{nil, "a string", decodeValue(t, `42`), decodeValue(t, `[1,2]`)} {
		row, reason := x.ExtractRow(raw, "scalar.json")
		assert.Nil(t, row)
		assert.Equal(t, RejectNotAMapping, reason)
	}
	assert.Equal(t, 4, x.Stats.InvalidRecords)
}

func TestExtractRowDeduplicatesByURN(t *testing.T) {
	first := decodeValue(t, `{"entityUrn": "urn:li:company:42", "companyName": "First"}`)
	second := decodeValue(t, `{"entityUrn": "urn:li:company:42", "companyName": "Second"}`)

	x := NewExtractor(false)

	row, reason := x.ExtractRow(first, "a.json")
	require.Equal(t, RejectNone, reason)
	assert.Equal(t, "First", row["companyName"])

	row, reason = x.ExtractRow(second, "b.json")
	assert.Nil(t, row)
	assert.Equal(t, RejectDuplicate, reason)
	assert.Equal(t, 1, x.Stats.DuplicateRecords)
}

func TestExtractRowEmptyURNNeverDuplicate(t *testing.T) {
	x := NewExtractor(false)

	for i := 0; i < 3; i++ {
		_, reason := x.ExtractRow(decodeValue(t, `{"companyName": "No URN"}`), "a.json")
		require.Equal(t, RejectNone, reason)
	}
	assert.Equal(t, 3, x.Stats.ValidRecords)
	assert.Equal(t, 0, x.Stats.DuplicateRecords)
}

func TestExtractorLedgerIsPerInstance(t *testing.T) {
	rec := `{"entityUrn": "urn:li:company:7"}`

	x1 := NewExtractor(false)
	_, reason := x1.ExtractRow(decodeValue(t, rec), "a.json")
	require.Equal(t, RejectNone, reason)

	// A fresh extractor must not remember the previous run's URNs.
	x2 := NewExtractor(false)
	_, reason = x2.ExtractRow(decodeValue(t, rec), "a.json")
	assert.Equal(t, RejectNone, reason)
}

func TestExtractRowPanicRejectsOnlyThatRecord(t *testing.T) {
	original := fieldSpecs
	defer func() { fieldSpecs = original }()
	fieldSpecs = append(append([]fieldSpec(nil), original...), fieldSpec{
		name: "companyName",
		extract: func(rec model.GenericRecord, _ string) string {
			if rec["companyName"] == "boom" {
				panic("unexpected value")
			}
			return stringValue(rec["companyName"])
		},
	})

	x := NewExtractor(false)

	row, reason := x.ExtractRow(decodeValue(t, `{"companyName": "boom", "entityUrn": "urn:li:company:1"}`), "a.json")
	assert.Equal(t, RejectInternal, reason)
	assert.Nil(t, row)
	assert.Equal(t, 1, x.Stats.ExtractionErrors)

	// The next record on the same extractor is unaffected.
	row, reason = x.ExtractRow(decodeValue(t, `{"companyName": "Fine Co", "entityUrn": "urn:li:company:2"}`), "a.json")
	require.Equal(t, RejectNone, reason)
	assert.Equal(t, "Fine Co", row["companyName"])
	assert.Equal(t, 1, x.Stats.ValidRecords)
	assert.Equal(t, 1, x.Stats.ExtractionErrors)
}

func TestBuildLinkedInURL(t *testing.T) {
	tests := []struct {
		urn  string
		want string
	}{
		{"urn:li:company:12345", "https://www.linkedin.com/sales/company/12345"},
		{"urn:li:company:42", "https://www.linkedin.com/sales/company/42"},
		{"no-separator", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BuildLinkedInURL(tt.urn), "urn=%q", tt.urn)
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{"Hello\nWorld", "Hello World"},
		{"Multiple   spaces", "Multiple spaces"},
		{"line1\r\nline2", "line1 line2"},
		{"  padded  ", "padded"},
		{nil, ""},
		{json.Number("12"), "12"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeText(tt.in), "in=%v", tt.in)
	}
}

func TestPickArtifactURLExactWidth(t *testing.T) {
	pic := decodeValue(t, `{
		"rootUrl": "https://media.licdn.com/",
		"artifacts": [
			{"width": 100, "fileIdentifyingUrlPathSegment": "small.png"},
			{"width": 200, "fileIdentifyingUrlPathSegment": "medium.png"}
		]
	}`).(map[string]interface{})

	assert.Equal(t, "https://media.licdn.com/medium.png", PickArtifactURL(pic, 200))
}

func TestPickArtifactURLFallsBackToFirst(t *testing.T) {
	pic := decodeValue(t, `{
		"rootUrl": "https://media.licdn.com/",
		"artifacts": [
			{"width": 100, "fileIdentifyingUrlPathSegment": "small.png"},
			{"width": 200, "fileIdentifyingUrlPathSegment": "medium.png"}
		]
	}`).(map[string]interface{})

	// No width-400 artifact: first artifact wins, source order preserved.
	assert.Equal(t, "https://media.licdn.com/small.png", PickArtifactURL(pic, 400))
}

func TestPickArtifactURLMissingPieces(t *testing.T) {
	assert.Empty(t, PickArtifactURL(nil, 100))

	noArtifacts := decodeValue(t, `{"rootUrl": "https://media.licdn.com/", "artifacts": []}`).(map[string]interface{})
	assert.Empty(t, PickArtifactURL(noArtifacts, 100))

	noRoot := decodeValue(t, `{"artifacts": [{"width": 100, "fileIdentifyingUrlPathSegment": "x.png"}]}`).(map[string]interface{})
	assert.Empty(t, PickArtifactURL(noRoot, 100))

	noSegment := decodeValue(t, `{"rootUrl": "https://media.licdn.com/", "artifacts": [{"width": 100}]}`).(map[string]interface{})
	assert.Empty(t, PickArtifactURL(noSegment, 100))
}

func TestJoinBadges(t *testing.T) {
	badges := decodeValue(t, `[
		{"id": "HIRING", "displayValue": "Hiring on LinkedIn"},
		{"id": "GROWTH", "displayValue": ""},
		{"id": "", "displayValue": "Senior leadership changes"},
		{"id": "", "displayValue": ""}
	]`).([]interface{})

	got := JoinBadges(badges)
	assert.Equal(t, "HIRING: Hiring on LinkedIn | GROWTH | Senior leadership changes", got)

	assert.Empty(t, JoinBadges(nil))
	assert.Empty(t, JoinBadges([]interface{}{}))
}

func TestStringValueCoercion(t *testing.T) {
	assert.Equal(t, "", stringValue(nil))
	assert.Equal(t, "plain", stringValue("plain"))
	assert.Equal(t, "true", stringValue(true))
	assert.Equal(t, "false", stringValue(false))
	assert.Equal(t, "12345678901234567890", stringValue(json.Number("12345678901234567890")))
	assert.Equal(t, "2.5", stringValue(2.5))
	assert.Equal(t, "5", stringValue(5.0))
}
