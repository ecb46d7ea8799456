package provider

import (
	"strconv"
	"strings"
)

// ExtractID returns the integer in the last path segment of a PokéAPI
// reference URL such as "https://pokeapi.co/api/v2/pokemon-species/25/".
//
// The trailing slash is required and the segment must be plain digits.
// Anything else returns a *MalformedReferenceError.
func ExtractID(url string) (int, error) {
	trimmed, ok := strings.CutSuffix(url, "/")
	if !ok {
		return 0, &MalformedReferenceError{URL: url}
	}

	segment := trimmed[strings.LastIndexByte(trimmed, '/')+1:]
	if segment == "" || strings.TrimLeft(segment, "0123456789") != "" {
		return 0, &MalformedReferenceError{URL: url}
	}

	id, err := strconv.Atoi(segment)
	if err != nil {
		// Out of int range.
		return 0, &MalformedReferenceError{URL: url}
	}
	return id, nil
}
