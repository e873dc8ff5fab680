// Package hook decodes save requests sent by the host editor when its
// save-customizations routine runs.
package hook

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/dse/emacs-custom-faces-file/internal/custom"
	"github.com/dse/emacs-custom-faces-file/internal/template"
)

// ErrNoSettings is returned when a save request carries no settings
// document.
var ErrNoSettings = errors.New("save request has no settings")

// SaveRequest is what the host editor sends at save time: the kind of
// display in use, the themes enabled in activation order, which
// settings category to save, and the settings document itself.
type SaveRequest struct {
	Settings    *custom.Settings `json:"settings"`
	DisplayKind string           `json:"display_kind"` //nolint:tagliatelle // API uses snake_case
	Mode        string           `json:"mode"`
	Themes      []string         `json:"themes"`
}

// ParseSaveRequest decodes a save request from the host editor. A
// missing display kind means the host has no graphical display and is
// reported as "tty".
func ParseSaveRequest(reader io.Reader) (*SaveRequest, error) {
	var request SaveRequest
	decoder := json.NewDecoder(reader)
	err := decoder.Decode(&request)
	if err != nil {
		return nil, err //nolint:wrapcheck // JSON decode errors are self-descriptive
	}

	if request.Settings == nil {
		return nil, ErrNoSettings
	}

	if request.DisplayKind == "" {
		request.DisplayKind = template.DefaultDisplayKind
	}

	return &request, nil
}
