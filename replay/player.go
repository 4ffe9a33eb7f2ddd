package replay

import (
	"time"

	"github.com/lixenwraith/lucky-draw/components"
	"github.com/rs/zerolog/log"
)

// Target receives replayed events, implemented by the draw session
type Target interface {
	Start(n int) error
	Reset()
	ContactBegin(id components.ContactID, pos components.Point)
	ContactMove(id components.ContactID, pos components.Point)
	ContactEnd(id components.ContactID)
}

// Player releases script events as their offsets elapse
// Called from the loop goroutine once per frame
type Player struct {
	script *Script
	target Target
	origin time.Time
	next   int
}

// NewPlayer starts the script's draw on target and anchors offsets at origin
func NewPlayer(script *Script, target Target, origin time.Time) (*Player, error) {
	if script.Winners > 0 {
		if err := target.Start(script.Winners); err != nil {
			return nil, err
		}
	}
	log.Info().
		Str("script", script.Name).
		Int("events", len(script.Events)).
		Dur("duration", script.Duration()).
		Msg("replay started")

	return &Player{
		script: script,
		target: target,
		origin: origin,
	}, nil
}

// Advance applies every event due at now, returns the number applied
func (p *Player) Advance(now time.Time) int {
	elapsed := now.Sub(p.origin)
	applied := 0
	for p.next < len(p.script.Events) {
		ev := p.script.Events[p.next]
		if ev.At > elapsed {
			break
		}
		p.apply(ev)
		p.next++
		applied++
	}
	return applied
}

// Done reports whether every event was applied
func (p *Player) Done() bool {
	return p.next >= len(p.script.Events)
}

func (p *Player) apply(ev Event) {
	pos := components.Point{X: ev.X, Y: ev.Y}
	switch ev.Type {
	case EventBegin:
		p.target.ContactBegin(ev.ID, pos)
	case EventMove:
		p.target.ContactMove(ev.ID, pos)
	case EventEnd:
		p.target.ContactEnd(ev.ID)
	case EventReset:
		p.target.Reset()
	case EventStart:
		if err := p.target.Start(ev.Winners); err != nil {
			log.Warn().Err(err).Dur("at", ev.At).Msg("replay start rejected")
		}
	}
}
