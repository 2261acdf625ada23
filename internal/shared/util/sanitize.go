package util

import (
	"errors"
	"strings"
	"unicode"
)

// SanitizeFileName removes path separators and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}

// ExportFileName builds a download name such as "ada-lovelace-resume.pdf"
// from the resume owner's name, falling back to "resume.<ext>".
func ExportFileName(fullName, ext string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(fullName) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	name := "resume." + ext
	if slug != "" {
		name = slug + "-" + name
	}
	if safe, err := SanitizeFileName(name); err == nil {
		return safe
	}
	return "resume." + ext
}
