package commands

import (
	termbox "github.com/nsf/termbox-go"
	"github.com/snakearcade/engine/rules"
	"github.com/snakearcade/engine/worker"
)

// action is what a key press asks for. Only one of event and mute is set.
type action struct {
	event worker.Event
	mute  bool
}

var arrowKeys = map[termbox.Key]rules.Direction{
	termbox.KeyArrowUp:    rules.Up,
	termbox.KeyArrowDown:  rules.Down,
	termbox.KeyArrowLeft:  rules.Left,
	termbox.KeyArrowRight: rules.Right,
}

var letterKeys = map[rune]worker.Event{
	'w': worker.DirectionEvent{Direction: rules.Up},
	's': worker.DirectionEvent{Direction: rules.Down},
	'a': worker.DirectionEvent{Direction: rules.Left},
	'd': worker.DirectionEvent{Direction: rules.Right},
	'p': worker.TogglePauseEvent{},
	'r': worker.RestartEvent{},
	'm': worker.MenuEvent{},
	'q': worker.QuitEvent{},
	'1': worker.SelectDifficultyEvent{Name: rules.Easy.Name},
	'2': worker.SelectDifficultyEvent{Name: rules.Normal.Name},
	'3': worker.SelectDifficultyEvent{Name: rules.Hard.Name},
}

// keyAction maps a terminal event to a game action.
func keyAction(ev termbox.Event) (action, bool) {
	if ev.Type != termbox.EventKey {
		return action{}, false
	}
	if d, ok := arrowKeys[ev.Key]; ok {
		return action{event: worker.DirectionEvent{Direction: d}}, true
	}
	switch ev.Key {
	case termbox.KeyEsc:
		return action{event: worker.TogglePauseEvent{}}, true
	case termbox.KeySpace, termbox.KeyEnter:
		return action{event: worker.StartEvent{}}, true
	case termbox.KeyCtrlC:
		return action{event: worker.QuitEvent{}}, true
	}
	if ev.Ch == 0 {
		return action{}, false
	}
	ch := ev.Ch
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	if ch == 'x' {
		return action{mute: true}, true
	}
	e, ok := letterKeys[ch]
	return action{event: e}, ok
}
