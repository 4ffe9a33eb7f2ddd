package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English
	message.SetString(lang, KeyStatusTarget, "Drawing %d")
	message.SetString(lang, KeyInstruction, "Press and hold for 3 seconds to join")
	message.SetString(lang, KeyInvalidCount, "Numbers only, between %d and %d")
	message.SetString(lang, KeyWinnerField, "Winners: %s_")
	message.SetString(lang, KeyHintIdle, "[0-9] count  [Enter] start  [q] quit")
	message.SetString(lang, KeyHintCollecting, "[r] reset  [q] quit")
	message.SetString(lang, KeyHintCelebrate, "[q] quit")
	message.SetString(lang, KeyHintDone, "[r] reset  [q] quit")
	message.SetString(lang, KeyWinnersTitle, "Winners")
}
