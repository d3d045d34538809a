package domain

import "strings"

// ValidationError describes one violated constraint on one form field.
type ValidationError struct {
	Field string
	Tag   string
	Param string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		if e.Param != "" {
			parts = append(parts, e.Field+": "+e.Tag+"="+e.Param)
			continue
		}
		parts = append(parts, e.Field+": "+e.Tag)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Has reports whether field failed the given tag.
func (v ValidationErrors) Has(field, tag string) bool {
	for _, e := range v {
		if e.Field == field && e.Tag == tag {
			return true
		}
	}
	return false
}
