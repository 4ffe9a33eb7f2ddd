package main

import (
	"fmt"
	"io"
	"time"

	"github.com/lixenwraith/lucky-draw/game"
	"github.com/lixenwraith/lucky-draw/i18n"
	"golang.org/x/text/message"
)

// printWinners writes a localized title, one line per draw and one indented line per winner
func printWinners(w io.Writer, p *message.Printer, draws []game.WinnersReady) {
	fmt.Fprintln(w, p.Sprintf(i18n.KeyWinnersTitle))
	if len(draws) == 0 {
		fmt.Fprintln(w, "no winners drawn")
		return
	}
	for _, d := range draws {
		fmt.Fprintf(w, "draw %s: %d of %d requested\n", d.SessionID, len(d.Winners), d.Requested)
		for i, winner := range d.Winners {
			fmt.Fprintf(w, "  %d. contact %d %s at (%.0f, %.0f) held %v\n", i+1, winner.ID, winner.Color.Name(), winner.Position.X, winner.Position.Y, winner.Held.Round(time.Millisecond))
		}
	}
}
