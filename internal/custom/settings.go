// Package custom models the editor customization document: variable
// settings and face (appearance) settings that can be saved together
// or split across two files.
package custom

import "encoding/json"

// Settings is the customization document. Variables hold ordinary
// saved settings, Faces hold appearance settings keyed by face name.
type Settings struct {
	Variables map[string]json.RawMessage `json:"variables,omitempty"`
	Faces     map[string]json.RawMessage `json:"faces,omitempty"`
}

// NewSettings creates an empty customization document.
func NewSettings() *Settings {
	return &Settings{
		Variables: make(map[string]json.RawMessage),
		Faces:     make(map[string]json.RawMessage),
	}
}

// VariablesOnly returns a document containing only the variable
// settings of s.
func (s *Settings) VariablesOnly() *Settings {
	return &Settings{Variables: s.Variables}
}

// FacesOnly returns a document containing only the face settings of s.
func (s *Settings) FacesOnly() *Settings {
	return &Settings{Faces: s.Faces}
}

// IsEmpty reports whether the document has no settings at all.
func (s *Settings) IsEmpty() bool {
	return len(s.Variables) == 0 && len(s.Faces) == 0
}
