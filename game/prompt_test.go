package game

import (
	"errors"
	"testing"
)

func TestFieldEditing(t *testing.T) {
	h := newHarness(t, nil)
	s := h.session

	s.AppendDigit('1')
	s.AppendDigit('x')
	s.AppendDigit('2')
	s.AppendDigit('3')
	if s.Field() != "12" {
		t.Fatalf("field = %q, want 12", s.Field())
	}
	s.Backspace()
	if s.Field() != "1" {
		t.Fatalf("field = %q after backspace", s.Field())
	}
	s.Backspace()
	s.Backspace()
	if s.Field() != "" {
		t.Fatalf("field = %q", s.Field())
	}
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		field   string
		wantErr bool
	}{
		{"", true},
		{"0", true},
		{"21", true},
		{"1", false},
		{"20", false},
	}

	for _, tt := range tests {
		h := newHarness(t, nil)
		s := h.session
		for _, r := range tt.field {
			s.AppendDigit(r)
		}

		err := s.Submit()
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidWinnerCount) {
				t.Errorf("Submit(%q) = %v, want ErrInvalidWinnerCount", tt.field, err)
			}
			if s.Mode() != ModeIdle {
				t.Errorf("Submit(%q) left idle", tt.field)
			}
			bar := s.StatusBar()
			if !bar.Error || bar.Message == "" {
				t.Errorf("Submit(%q) showed no validation message", tt.field)
			}
			continue
		}
		if err != nil {
			t.Errorf("Submit(%q) = %v", tt.field, err)
		}
		if s.Mode() != ModeCollecting || s.Field() != "" {
			t.Errorf("Submit(%q): mode %v field %q", tt.field, s.Mode(), s.Field())
		}
	}
}

func TestValidationMessageClearsOnEdit(t *testing.T) {
	h := newHarness(t, nil)
	s := h.session
	_ = s.Submit()
	if !s.StatusBar().Error {
		t.Fatal("expected error banner")
	}
	s.AppendDigit('3')
	if s.StatusBar().Error || s.Message() != "" {
		t.Error("error banner kept after edit")
	}
}

func TestStatusBarByMode(t *testing.T) {
	h := newHarness(t, nil)
	s := h.session

	bar := s.StatusBar()
	if bar.Field == "" || bar.Hint == "" || bar.Status != "" {
		t.Errorf("idle bar = %+v", bar)
	}

	h.start(1)
	bar = s.StatusBar()
	if bar.Field != "" || bar.Status == "" || bar.Hint == "" {
		t.Errorf("collecting bar = %+v", bar)
	}
	if bar.Debug != "" {
		t.Error("debug line without debug enabled")
	}
}

func TestStatusBarDebugLine(t *testing.T) {
	h := newHarness(t, nil)
	h.session.cfg.Debug = true
	h.start(1)
	h.advance(frame)

	if h.session.StatusBar().Debug == "" {
		t.Error("debug line empty with debug enabled")
	}
}
