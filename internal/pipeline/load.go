package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// LoadJSON reads one file and decodes it as a single JSON value. Numbers
// are decoded as json.Number so large integer identifiers survive
// re-encoding into the combined output untouched. On failure nothing is
// returned: a file either parses completely or is rejected.
func LoadJSON(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if dec.More() {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("trailing data after JSON value")}
	}

	return value, nil
}
