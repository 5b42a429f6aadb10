package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSON column helpers shared by the hotel model. Stored as jsonb in
// postgres; round-tripped through encoding/json.

// Phone is one hotel contact number as delivered by the provider
type Phone struct {
	PhoneNumber string `json:"phoneNumber"`
	PhoneType   string `json:"phoneType"`
}

// PhoneList is a jsonb-backed slice of phones
type PhoneList []Phone

func (p PhoneList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal(p)
	return string(b), err
}

func (p *PhoneList) Scan(value interface{}) error {
	return scanJSON(value, p)
}

// StringList is a jsonb-backed slice of strings (image paths)
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *StringList) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// JSONMap is a jsonb-backed free-form object (hotel customData)
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *JSONMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// Merge returns a copy of m with every key from other overlaid on top.
// Used by the hotel update policy: customData edits merge, not replace.
func (m JSONMap) Merge(other JSONMap) JSONMap {
	merged := make(JSONMap, len(m)+len(other))
	for k, v := range m {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported type for jsonb column")
	}
}
