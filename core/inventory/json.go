package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// looseText decodes a JSON string, number or boolean as text. Saved sessions may
// carry spreadsheet names as numbers.
type looseText string

func (t *looseText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*t = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = looseText(s)
	case data[0] == '{' || data[0] == '[':
		return fmt.Errorf("expected text, got %s", data)
	default:
		*t = looseText(data)
	}
	return nil
}

func (i *InventoryItem) UnmarshalJSON(data []byte) error {
	type plain InventoryItem
	aux := struct {
		*plain
		Name looseText `json:"name"`
	}{plain: (*plain)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	i.Name = string(aux.Name)
	return nil
}

func (r *RealRecord) UnmarshalJSON(data []byte) error {
	type plain RealRecord
	aux := struct {
		*plain
		Name looseText `json:"name"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Name = string(aux.Name)
	return nil
}

func (e *AuditEntry) UnmarshalJSON(data []byte) error {
	type plain AuditEntry
	aux := struct {
		*plain
		Name looseText `json:"name"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.Name = string(aux.Name)
	return nil
}

func (inc *Incident) UnmarshalJSON(data []byte) error {
	type plain Incident
	aux := struct {
		*plain
		Name looseText `json:"name"`
	}{plain: (*plain)(inc)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	inc.Name = string(aux.Name)
	return nil
}
