package handlers

import (
	"strconv"
)

// Optional request fields arrive as empty strings as often as they arrive
// absent; both canonicalize to nil here so the row gets a real NULL.

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func optionalFloat(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
