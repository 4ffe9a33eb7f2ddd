// Package replay loads scripted contact sequences and plays them against a session
package replay

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/lixenwraith/lucky-draw/components"
	"gopkg.in/yaml.v3"
)

// EventType names a scripted action
type EventType string

const (
	EventBegin EventType = "begin"
	EventMove  EventType = "move"
	EventEnd   EventType = "end"
	EventStart EventType = "start"
	EventReset EventType = "reset"
)

// Event is one scripted action at an offset from the start of playback
// Positions are surface coordinates
type Event struct {
	At      time.Duration        `yaml:"at"`
	Type    EventType            `yaml:"type"`
	ID      components.ContactID `yaml:"id"`
	X       float64              `yaml:"x"`
	Y       float64              `yaml:"y"`
	Winners int                  `yaml:"winners"`
}

// Script is a named draw, started with Winners before the first event
type Script struct {
	Name    string  `yaml:"name"`
	Winners int     `yaml:"winners"`
	Events  []Event `yaml:"events"`
}

// ErrEmptyScript is returned for a script without events
var ErrEmptyScript = errors.New("replay script has no events")

// Load reads and parses a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replay script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script and orders its events by offset
// Events sharing an offset keep their file order
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse replay script: %w", err)
	}
	if len(s.Events) == 0 {
		return nil, ErrEmptyScript
	}

	for i, ev := range s.Events {
		if ev.At < 0 {
			return nil, fmt.Errorf("event %d: negative offset %v", i, ev.At)
		}
		switch ev.Type {
		case EventBegin, EventMove, EventEnd:
			if ev.ID <= 0 {
				return nil, fmt.Errorf("event %d: %s needs a positive id", i, ev.Type)
			}
		case EventStart, EventReset:
		default:
			return nil, fmt.Errorf("event %d: unknown type %q", i, ev.Type)
		}
	}

	slices.SortStableFunc(s.Events, func(a, b Event) int {
		switch {
		case a.At < b.At:
			return -1
		case a.At > b.At:
			return 1
		}
		return 0
	})
	return &s, nil
}

// Duration returns the offset of the last event
func (s *Script) Duration() time.Duration {
	return s.Events[len(s.Events)-1].At
}
