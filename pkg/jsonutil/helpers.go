// Package jsonutil provides small JSON helpers used for technique
// generator parameters: pretty-printing in the detail pane and CLI,
// compacting for storage.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Pretty formats a JSON string with indentation for display.
// Returns the input unchanged if it is not valid JSON.
func Pretty(s string) string {
	var obj interface{}
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return s
	}
	pretty, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return s
	}
	return string(pretty)
}

// Compact minifies a JSON string by removing whitespace.
// Returns the input unchanged if it is not valid JSON.
func Compact(s string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

// MustMarshal marshals a value to JSON, panicking on error. Use only for
// values known to be marshalable: the built-in technique parameter maps.
func MustMarshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("jsonutil.MustMarshal: %v", err))
	}
	return string(b)
}
