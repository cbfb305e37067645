package cache

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// ErrInvalidKey is returned when a cache key fails validation
var ErrInvalidKey = errors.New("invalid cache key")

const keySeparator = ":"

// BuildKey joins key parts into a canonical cache key. Empty parts are
// skipped, so BuildKey("bankAccounts") and BuildKey("bankAccounts", "")
// produce the same key.
func BuildKey(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, keySeparator)
}

// BuildFilterKey appends a filter map to a resource key in sorted order so
// equal filters always hash to the same key regardless of map iteration.
// Empty filter values are omitted.
func BuildFilterKey(resource string, filters map[string]string) string {
	if len(filters) == 0 {
		return resource
	}

	keys := make([]string, 0, len(filters))
	for k, v := range filters {
		if v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return resource
	}

	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(resource)
	for _, k := range keys {
		b.WriteString(keySeparator)
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(filters[k])
	}
	return b.String()
}

// ValidateKey checks if a cache key is valid: non-empty, at most 250
// characters, no control characters, no surrounding whitespace.
func ValidateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	if len(key) > 250 {
		return fmt.Errorf("%w: key too long (max 250 characters)", ErrInvalidKey)
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: key contains control character", ErrInvalidKey)
		}
	}

	if strings.TrimSpace(key) != key {
		return fmt.Errorf("%w: key has leading or trailing whitespace", ErrInvalidKey)
	}

	return nil
}

func hasKeyPrefix(key, prefix string) bool {
	if key == prefix {
		return true
	}
	return strings.HasPrefix(key, prefix+keySeparator)
}
