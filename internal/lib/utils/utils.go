// Package utils contains small helper functions used across the project.
//
// These are usually generic helpers that don't belong to a specific domain.
package utils

import (
	"encoding/json"
	"fmt"
)

// Ptr returns a pointer to v. Handy for optional fields on request and
// entity structs.
func Ptr[T any](v T) *T {
	return &v
}

// PrintJSON pretty-prints any Go value as indented JSON to stdout.
// Debugging aid only.
func PrintJSON(v any) {
	out, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		fmt.Println("Error marshalling the JSON:", err)
		return
	}
	fmt.Println("JSON:", string(out))
}
