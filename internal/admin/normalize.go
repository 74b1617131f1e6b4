package admin

import (
	"fmt"
	"strings"
	"time"
)

// Server-assigned fields an editor can never write.
var strippedKeys = map[string]struct{}{
	"id":         {},
	"created_at": {},
}

// Record is a normalized admin payload: declared keys only, values parsed
// per field kind (string, float64 or time.Time). Keys absent from the
// submitted payload stay absent, which is how an edit keeps fields — an
// image field in particular — it does not resubmit.
type Record map[string]any

// Normalize validates a raw payload against the schema. Required fields
// are enforced on create; on update only the provided fields are checked,
// and a missing image keeps the stored URL.
func (s Schema) Normalize(payload map[string]any, create bool) (Record, error) {
	record := make(Record, len(payload))

	for key, raw := range payload {
		if _, stripped := strippedKeys[key]; stripped {
			continue
		}
		field, ok := s.field(key)
		if !ok {
			continue
		}
		if raw == nil {
			continue
		}

		value, err := coerce(field, raw)
		if err != nil {
			return nil, err
		}
		record[key] = value
	}

	for _, field := range s.Fields {
		if !field.Required {
			continue
		}
		if !create && field.Kind == KindImage {
			continue
		}
		if _, ok := record[field.Key]; ok {
			continue
		}
		if create {
			return nil, fmt.Errorf("%s is required", field.Key)
		}
	}

	return record, nil
}

func coerce(field Field, raw any) (any, error) {
	switch field.Kind {
	case KindNumber:
		switch v := raw.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case string:
			if strings.TrimSpace(v) == "" {
				return nil, fmt.Errorf("%s must be a number", field.Key)
			}
			var parsed float64
			if _, err := fmt.Sscanf(strings.TrimSpace(v), "%g", &parsed); err != nil {
				return nil, fmt.Errorf("%s must be a number", field.Key)
			}
			return parsed, nil
		default:
			return nil, fmt.Errorf("%s must be a number", field.Key)
		}

	case KindDateTime:
		value, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be an RFC 3339 timestamp", field.Key)
		}
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, fmt.Errorf("%s must be an RFC 3339 timestamp", field.Key)
		}
		return parsed, nil

	case KindSelect:
		value, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be a string", field.Key)
		}
		// A select without declared options takes any value; the option
		// list comes from elsewhere (e.g. the teams table).
		if len(field.Options) > 0 && !contains(field.Options, value) {
			return nil, fmt.Errorf("%s: %q is not an allowed value", field.Key, value)
		}
		return value, nil

	default: // text, richtext, image
		value, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be a string", field.Key)
		}
		if field.Required && strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%s is required", field.Key)
		}
		return value, nil
	}
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}

// String returns the normalized string for key, or "" when absent.
func (r Record) String(key string) string {
	value, _ := r[key].(string)
	return value
}

// StringPtr returns a pointer only when the key was provided.
func (r Record) StringPtr(key string) *string {
	raw, ok := r[key]
	if !ok {
		return nil
	}
	value, ok := raw.(string)
	if !ok {
		return nil
	}
	return &value
}

// Float returns the normalized number for key, or 0 when absent.
func (r Record) Float(key string) float64 {
	value, _ := r[key].(float64)
	return value
}

// FloatPtr returns a pointer only when the key was provided.
func (r Record) FloatPtr(key string) *float64 {
	raw, ok := r[key]
	if !ok {
		return nil
	}
	value, ok := raw.(float64)
	if !ok {
		return nil
	}
	return &value
}

// IntPtr narrows a provided number to an int pointer.
func (r Record) IntPtr(key string) *int {
	f := r.FloatPtr(key)
	if f == nil {
		return nil
	}
	value := int(*f)
	return &value
}

// Time returns the normalized timestamp for key and whether it was provided.
func (r Record) Time(key string) (time.Time, bool) {
	value, ok := r[key].(time.Time)
	return value, ok
}

// TimePtr returns a pointer only when the key was provided.
func (r Record) TimePtr(key string) *time.Time {
	value, ok := r[key].(time.Time)
	if !ok {
		return nil
	}
	return &value
}

// Has reports whether the key survived normalization.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}
