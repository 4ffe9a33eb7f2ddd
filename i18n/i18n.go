// Package i18n holds the localized strings shown in the status bar
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys
const (
	KeyStatusTarget   = "status.target"
	KeyInstruction    = "message.instruction"
	KeyInvalidCount   = "message.invalid_count"
	KeyWinnerField    = "field.winners"
	KeyHintIdle       = "hint.idle"
	KeyHintCollecting = "hint.collecting"
	KeyHintCelebrate  = "hint.celebrate"
	KeyHintDone       = "hint.done"
	KeyWinnersTitle   = "winners.title"
)

var supported = []language.Tag{
	language.English,
	language.Korean,
}

var matcher = language.NewMatcher(supported)

// Supported reports whether locale resolves to a bundled catalog
func Supported(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	_, _, confidence := matcher.Match(tag)
	return confidence >= language.High
}

// NewPrinter returns a printer for the closest bundled locale
func NewPrinter(locale string) (*message.Printer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	_, idx, _ := matcher.Match(tag)
	return message.NewPrinter(supported[idx]), nil
}
