package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONB column helpers. GORM maps these through database/sql's
// Valuer/Scanner pair; Postgres stores them as jsonb, the sqlite
// driver used in tests stores the serialized text.

// JSONMap is a free-form JSON object column
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	return scanJSON(value, m)
}

// StringList is a JSON array of strings column
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	return scanJSON(value, l)
}

// Buttons is a JSON array of Button column
type Buttons []Button

func (b Buttons) Value() (driver.Value, error) {
	if b == nil {
		return "[]", nil
	}
	data, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (b *Buttons) Scan(value interface{}) error {
	if value == nil {
		*b = Buttons{}
		return nil
	}
	return scanJSON(value, b)
}

// MediaItems is a JSON array of MediaItem column
type MediaItems []MediaItem

func (m MediaItems) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (m *MediaItems) Scan(value interface{}) error {
	if value == nil {
		*m = MediaItems{}
		return nil
	}
	return scanJSON(value, m)
}

// Colors is the jsonb-backed palette column of a website theme
type Colors ThemeColors

func (c Colors) Value() (driver.Value, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (c *Colors) Scan(value interface{}) error {
	if value == nil {
		*c = Colors{}
		return nil
	}
	return scanJSON(value, c)
}

func scanJSON(value interface{}, dest interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}
