package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/document.schema.json
var documentSchema []byte

// FieldError is a single schema violation at a JSON path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every violation found in an imported document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("document validation failed:")
	for _, e := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", e.Field, e.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateJSON checks raw JSON against the embedded document schema.
func ValidateJSON(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(documentSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validate document: %w", err)
	}
	if result.Valid() {
		return nil
	}
	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}

// Decode validates and parses a document. Skills and achievements are
// re-inserted so the imported lists obey the same trim/dedupe rules as
// interactive edits.
func Decode(data []byte) (Document, error) {
	if err := ValidateJSON(data); err != nil {
		return Document{}, err
	}
	var raw Document
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}
	doc := raw
	doc.Skills = []string{}
	doc.Achievements = []string{}
	for _, s := range raw.Skills {
		doc.AddSkill(s)
	}
	for _, a := range raw.Achievements {
		doc.AddAchievement(a)
	}
	if doc.Experience == nil {
		doc.Experience = []Experience{}
	}
	if doc.Education == nil {
		doc.Education = []Education{}
	}
	return doc, nil
}
