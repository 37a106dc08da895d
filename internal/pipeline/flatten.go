package pipeline

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"salesnav-etl/internal/model"
)

// CSVFields is the fixed output column order. Every extracted row carries
// exactly these fields, so the CSV header is stable regardless of which
// keys each source record actually had.
var CSVFields = []string{
	"companyName",
	"industry",
	"employeeCountRange",
	"employeeDisplayCount",
	"listCount",
	"saved",
	"entityUrn",
	"linkedin_url",
	"recipeType",
	"trackingId",
	"description",
	"logo_100",
	"logo_200",
	"logo_400",
	"spotlightBadges",
	"source_file",
}

const salesCompanyURLPrefix = "https://www.linkedin.com/sales/company/"

// RejectReason classifies why a record produced no row.
type RejectReason int

const (
	RejectNone RejectReason = iota
	RejectNotAMapping
	RejectDuplicate
	RejectInternal
)

// fieldSpec binds one output column to its extraction rule. Keeping the
// rules in a table makes adding or removing columns a data change and
// enforces the fixed field order structurally.
type fieldSpec struct {
	name    string
	extract func(rec model.GenericRecord, sourceFile string) string
}

var fieldSpecs = []fieldSpec{
	{"companyName", directField("companyName")},
	{"industry", directField("industry")},
	{"employeeCountRange", directField("employeeCountRange")},
	{"employeeDisplayCount", directField("employeeDisplayCount")},
	{"listCount", directField("listCount")},
	{"saved", directField("saved")},
	{"entityUrn", directField("entityUrn")},
	{"linkedin_url", func(rec model.GenericRecord, _ string) string {
		return BuildLinkedInURL(stringValue(rec["entityUrn"]))
	}},
	{"recipeType", directField("$recipeType")},
	{"trackingId", directField("trackingId")},
	{"description", func(rec model.GenericRecord, _ string) string {
		return NormalizeText(rec["description"])
	}},
	{"logo_100", logoField(100)},
	{"logo_200", logoField(200)},
	{"logo_400", logoField(400)},
	{"spotlightBadges", func(rec model.GenericRecord, _ string) string {
		badges, _ := rec["spotlightBadges"].([]interface{})
		return JoinBadges(badges)
	}},
	{"source_file", func(_ model.GenericRecord, sourceFile string) string {
		return filepath.Base(sourceFile)
	}},
}

// Extractor flattens raw records into fixed-field rows. It owns the
// deduplication ledger for exactly one run, so repeated runs and tests
// never see leaked state.
type Extractor struct {
	Verbose  bool
	Stats    model.ExtractStats
	seenUrns map[string]struct{}
}

// NewExtractor creates an extractor with a fresh deduplication ledger.
func NewExtractor(verbose bool) *Extractor {
	return &Extractor{
		Verbose:  verbose,
		seenUrns: make(map[string]struct{}),
	}
}

func (x *Extractor) seen(urn string) bool {
	_, ok := x.seenUrns[urn]
	return ok
}

func (x *Extractor) mark(urn string) {
	x.seenUrns[urn] = struct{}{}
}

// ExtractRow builds a flat row from one raw record. On success the reason
// is RejectNone and the row contains every declared field in declared
// order; any other reason means no row was produced and the matching stat
// counter was bumped. An unexpected panic while extracting degrades to
// RejectInternal for that record only.
func (x *Extractor) ExtractRow(raw interface{}, sourceFile string) (row model.FlatRow, reason RejectReason) {
	defer func() {
		if r := recover(); r != nil {
			x.Stats.ExtractionErrors++
			fmt.Printf("⚠️ Error extracting record from %s: %v\n", filepath.Base(sourceFile), r)
			row, reason = nil, RejectInternal
		}
	}()

	mapping, ok := raw.(map[string]interface{})
	if !ok {
		x.Stats.InvalidRecords++
		return nil, RejectNotAMapping
	}
	rec := model.GenericRecord(mapping)

	// First occurrence of a URN wins across the whole ordered record
	// sequence. Records without a URN are never deduplicated.
	urn := stringValue(rec["entityUrn"])
	if urn != "" {
		if x.seen(urn) {
			x.Stats.DuplicateRecords++
			if x.Verbose {
				fmt.Printf("🔍 Duplicate entity URN: %s\n", urn)
			}
			return nil, RejectDuplicate
		}
		x.mark(urn)
	}

	row = make(model.FlatRow, len(fieldSpecs))
	for _, fs := range fieldSpecs {
		row[fs.name] = fs.extract(rec, sourceFile)
	}

	x.Stats.ValidRecords++
	return row, RejectNone
}

func directField(key string) func(model.GenericRecord, string) string {
	return func(rec model.GenericRecord, _ string) string {
		return stringValue(rec[key])
	}
}

func logoField(width int) func(model.GenericRecord, string) string {
	return func(rec model.GenericRecord, _ string) string {
		pic, _ := rec["companyPictureDisplayImage"].(map[string]interface{})
		return PickArtifactURL(pic, width)
	}
}

// stringValue coerces a scalar JSON value to its plain string form.
// Missing values and nulls become the empty string.
func stringValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// BuildLinkedInURL derives the Sales Navigator company URL from an entity
// URN such as "urn:li:company:12345". The company code is the final
// colon-separated segment; URNs without a separator yield "".
func BuildLinkedInURL(entityUrn string) string {
	if entityUrn == "" || !strings.Contains(entityUrn, ":") {
		return ""
	}
	parts := strings.Split(entityUrn, ":")
	return salesCompanyURLPrefix + parts[len(parts)-1]
}

// NormalizeText replaces carriage returns and newlines with spaces, then
// collapses whitespace runs and trims the result. Nulls become "".
func NormalizeText(v interface{}) string {
	if v == nil {
		return ""
	}
	s := stringValue(v)
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.Join(strings.Fields(s), " ")
}

// PickArtifactURL selects the logo artifact whose width exactly matches
// targetWidth from a picture object, falling back to the first artifact in
// source order when no width matches. The result is the root URL and the
// chosen path segment concatenated verbatim; any missing piece yields "".
func PickArtifactURL(pic map[string]interface{}, targetWidth int) string {
	if pic == nil {
		return ""
	}

	root := stringValue(pic["rootUrl"])
	artifacts, _ := pic["artifacts"].([]interface{})

	var chosen map[string]interface{}
	for _, a := range artifacts {
		m, ok := a.(map[string]interface{})
		if !ok {
			continue
		}
		if artifactWidth(m["width"]) == targetWidth {
			chosen = m
			break
		}
	}
	if chosen == nil && len(artifacts) > 0 {
		chosen, _ = artifacts[0].(map[string]interface{})
	}

	if root == "" || chosen == nil {
		return ""
	}
	segment := stringValue(chosen["fileIdentifyingUrlPathSegment"])
	if segment == "" {
		return ""
	}
	return root + segment
}

func artifactWidth(v interface{}) int {
	switch w := v.(type) {
	case json.Number:
		n, err := w.Int64()
		if err != nil {
			return -1
		}
		return int(n)
	case float64:
		return int(w)
	case int:
		return w
	default:
		return -1
	}
}

// JoinBadges renders spotlight badge entries as "id: displayValue" pairs
// joined with " | ". One-sided entries drop the dangling separator and
// entries with both sides empty are dropped entirely.
func JoinBadges(badges []interface{}) string {
	var parts []string
	for _, b := range badges {
		m, ok := b.(map[string]interface{})
		if !ok {
			continue
		}
		label := stringValue(m["id"])
		display := stringValue(m["displayValue"])
		if label == "" && display == "" {
			continue
		}
		parts = append(parts, strings.Trim(label+": "+display, ": "))
	}
	return strings.Join(parts, " | ")
}
