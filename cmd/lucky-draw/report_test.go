package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/lucky-draw/components"
	"github.com/lixenwraith/lucky-draw/game"
	"github.com/lixenwraith/lucky-draw/i18n"
	"golang.org/x/text/message"
)

func mustPrinter(t *testing.T, locale string) *message.Printer {
	t.Helper()
	p, err := i18n.NewPrinter(locale)
	if err != nil {
		t.Fatalf("NewPrinter(%q): %v", locale, err)
	}
	return p
}

func TestPrintWinners(t *testing.T) {
	id := uuid.MustParse("6f1c2f8e-4d1a-4b7c-9a55-0f3f2d0c9b11")
	draws := []game.WinnersReady{{
		SessionID: id,
		Requested: 1,
		Winners: []components.ParticipantComponent{
			{ID: 3, Position: components.Point{X: 640, Y: 200}, Color: 2, Held: 4012 * time.Millisecond},
		},
	}}

	var buf bytes.Buffer
	printWinners(&buf, mustPrinter(t, "en"), draws)
	out := buf.String()

	if !strings.HasPrefix(out, "Winners\n") {
		t.Errorf("output missing title line:\n%s", out)
	}
	for _, want := range []string{id.String(), "1 of 1 requested", "contact 3", "(640, 200)", "4.012s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintWinnersEmpty(t *testing.T) {
	var buf bytes.Buffer
	printWinners(&buf, mustPrinter(t, "en"), nil)
	if !strings.Contains(buf.String(), "no winners") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrintWinnersLocalizedTitle(t *testing.T) {
	var buf bytes.Buffer
	printWinners(&buf, mustPrinter(t, "ko"), nil)
	if !strings.HasPrefix(buf.String(), "당첨\n") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLoadKeymapDefault(t *testing.T) {
	kt, err := loadKeymap("")
	if err != nil {
		t.Fatalf("loadKeymap: %v", err)
	}
	if len(kt.Runes) == 0 || len(kt.Keys) == 0 {
		t.Error("default keymap empty")
	}
}
