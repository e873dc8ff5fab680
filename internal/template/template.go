// Package template resolves face-file path templates against the
// current display kind and the list of enabled themes.
package template

import (
	"errors"
	"strings"
)

// ErrInvalidTemplate is returned by Validate for templates that can
// never resolve to a usable file path.
var ErrInvalidTemplate = errors.New("invalid face file template")

// DefaultDisplayKind is what callers pass when the host reports no
// graphical display.
const DefaultDisplayKind = "tty"

// Placeholder tokens recognized in face-file templates.
const (
	TokenDisplayShort = "%s"
	TokenDisplay      = "%{window-system}"
	TokenThemes       = "%{theme}"
	TokenThemesPre    = "%{-theme}"
	TokenThemesPost   = "%{theme-}"
)

// Resolve substitutes every placeholder token in tmpl and returns the
// resulting path. It is a pure function: displayKind replaces %s and
// %{window-system}, and the theme tokens expand from themes joined
// with "-". When themes is empty all theme tokens resolve to the
// empty string. Text that matches no token passes through unchanged.
func Resolve(tmpl, displayKind string, themes []string) string {
	if tmpl == "" {
		return ""
	}

	joined := strings.Join(themes, "-")
	pre := ""
	post := ""
	if joined != "" {
		pre = "-" + joined
		post = joined + "-"
	}

	// Longer tokens listed first so %{theme-} is never consumed as
	// %{theme} followed by a literal "-}".
	replacer := strings.NewReplacer(
		TokenDisplay, displayKind,
		TokenThemesPre, pre,
		TokenThemesPost, post,
		TokenThemes, joined,
		TokenDisplayShort, displayKind,
	)

	return replacer.Replace(tmpl)
}

// Validate checks that a template could resolve to a usable path.
// It is advisory: Resolve itself never fails.
func Validate(tmpl string) error {
	if strings.ContainsRune(tmpl, '\x00') {
		return ErrInvalidTemplate
	}
	return nil
}
