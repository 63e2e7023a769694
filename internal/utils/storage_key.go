package utils

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var extensionPattern = regexp.MustCompile(`^\.[a-z0-9]{1,16}$`)

// NewStorageKey returns a random blob key that keeps the extension of
// originalName, e.g. "3f0c...-9a1b.png". Extensions that are not plain
// alphanumerics are dropped.
func NewStorageKey(originalName string) string {
	key := uuid.NewString()

	ext := strings.ToLower(filepath.Ext(originalName))
	if extensionPattern.MatchString(ext) {
		key += ext
	}
	return key
}

// DisplayName returns the last path element of a client-supplied file name.
func DisplayName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
