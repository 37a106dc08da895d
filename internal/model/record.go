package model

// GenericRecord is a schema-agnostic map decoded from one JSON object.
type GenericRecord map[string]interface{}

// FlatRow maps the fixed CSV field names to string values. Every declared
// field is present in every row, empty string when the source had no data.
type FlatRow map[string]string
