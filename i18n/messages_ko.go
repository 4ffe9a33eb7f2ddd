package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Korean
	message.SetString(lang, KeyStatusTarget, "%d명 뽑기")
	message.SetString(lang, KeyInstruction, "3초 동안 길게 눌러 참여하세요")
	message.SetString(lang, KeyInvalidCount, "숫자만 입력 가능합니다. (%d~%d)")
	message.SetString(lang, KeyWinnerField, "인원: %s_")
	message.SetString(lang, KeyHintIdle, "[0-9] 인원  [Enter] 시작  [q] 종료")
	message.SetString(lang, KeyHintCollecting, "[r] 초기화  [q] 종료")
	message.SetString(lang, KeyHintCelebrate, "[q] 종료")
	message.SetString(lang, KeyHintDone, "[r] 초기화  [q] 종료")
	message.SetString(lang, KeyWinnersTitle, "당첨")
}
