package game

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/lucky-draw/constants"
	"github.com/lixenwraith/lucky-draw/i18n"
	"github.com/lixenwraith/lucky-draw/render"
)

// AppendDigit extends the winner count field while idle
func (s *Session) AppendDigit(r rune) {
	if s.mode != ModeIdle || r < '0' || r > '9' {
		return
	}
	if len(s.field) >= constants.WinnerFieldWidth {
		return
	}
	s.field += string(r)
	if s.messageErr {
		s.hideMessage()
	}
}

// Backspace removes the last digit of the winner count field
func (s *Session) Backspace() {
	if s.mode != ModeIdle || s.field == "" {
		return
	}
	s.field = s.field[:len(s.field)-1]
}

// Field returns the pending winner count text
func (s *Session) Field() string {
	return s.field
}

// Submit parses the field and starts a session, showing a validation message on failure
func (s *Session) Submit() error {
	if s.mode != ModeIdle {
		return nil
	}
	n, err := strconv.Atoi(s.field)
	if err != nil {
		err = fmt.Errorf("%w: %q is not a number", ErrInvalidWinnerCount, s.field)
	} else {
		err = s.Start(n)
	}
	if err != nil {
		s.showMessage(s.printer.Sprintf(i18n.KeyInvalidCount, constants.MinWinners, constants.MaxWinners), true)
		return err
	}
	return nil
}

func (s *Session) showMessage(text string, isErr bool) {
	s.message = text
	s.messageErr = isErr
}

func (s *Session) hideMessage() {
	s.message = ""
	s.messageErr = false
}

// Message returns the visible banner text, empty when hidden
func (s *Session) Message() string {
	return s.message
}

// StatusBar assembles the chrome drawn below the surface
func (s *Session) StatusBar() render.StatusBar {
	bar := render.StatusBar{
		Status:  s.status,
		Message: s.message,
		Error:   s.messageErr,
	}

	switch s.mode {
	case ModeIdle:
		bar.Field = s.printer.Sprintf(i18n.KeyWinnerField, s.field)
		bar.Hint = s.printer.Sprintf(i18n.KeyHintIdle)
	case ModeCollecting, ModeCountingDown:
		bar.Hint = s.printer.Sprintf(i18n.KeyHintCollecting)
	case ModeCelebrating:
		if s.done {
			bar.Hint = s.printer.Sprintf(i18n.KeyHintDone)
		} else {
			bar.Hint = s.printer.Sprintf(i18n.KeyHintCelebrate)
		}
	}

	if s.cfg.Debug {
		bar.Debug = s.reg.Line()
	}
	return bar
}

// Prompting reports whether the winner count field is editable
func (s *Session) Prompting() bool {
	return s.mode == ModeIdle
}
