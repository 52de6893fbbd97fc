// Package tui provides the interactive selection menu for MRU.
package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/donghojung/mru/internal/constants"
	"github.com/donghojung/mru/internal/mru"
)

// MenuState is the state of a selection menu.
type MenuState int

const (
	MenuPrompting MenuState = iota // Waiting for a valid choice
	MenuValidated                  // A choice was accepted
	MenuQuit                       // The user gave up; nothing selected
)

func (s MenuState) String() string {
	switch s {
	case MenuPrompting:
		return "prompting"
	case MenuValidated:
		return "validated"
	case MenuQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Menu is a numbered choice over at most PreviewEntries paths.
// Validated and Quit are terminal; further input is ignored.
type Menu struct {
	items  []string
	more   bool
	state  MenuState
	choice int
	err    error
}

// NewMenu builds a menu over items. Items past the preview window are
// dropped and reported through More.
func NewMenu(items []string) *Menu {
	return NewMenuMore(items, false)
}

// NewMenuMore is NewMenu for a list that was already cut short by the
// caller; more marks that further entries exist beyond items.
func NewMenuMore(items []string, more bool) *Menu {
	if len(items) > constants.PreviewEntries {
		items = items[:constants.PreviewEntries]
		more = true
	}
	return &Menu{
		items:  items,
		more:   more,
		choice: -1,
	}
}

// Items returns the selectable paths.
func (m *Menu) Items() []string { return m.items }

// More reports whether matches were left out of the menu.
func (m *Menu) More() bool { return m.more }

// State returns the current state.
func (m *Menu) State() MenuState { return m.state }

// Err returns why the last input was rejected, or nil.
func (m *Menu) Err() error { return m.err }

// Feed processes one line of user input and returns the new state.
// A number from 1 to len(Items) selects; "q" or "quit" quits; anything
// else is rejected and the menu keeps prompting.
func (m *Menu) Feed(input string) MenuState {
	if m.state != MenuPrompting {
		return m.state
	}

	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "q", "quit":
		m.Quit()
		return m.state
	}

	n, err := strconv.Atoi(input)
	if err != nil || !m.Select(n-1) {
		m.err = mru.InvalidArgumentError("invalid choice %q, enter 1-%d or q", input, len(m.items))
		return m.state
	}
	return m.state
}

// Select accepts the item at a zero-based index. It returns false if the
// index is out of range or the menu is no longer prompting.
func (m *Menu) Select(index int) bool {
	if m.state != MenuPrompting || index < 0 || index >= len(m.items) {
		return false
	}
	m.choice = index
	m.state = MenuValidated
	m.err = nil
	return true
}

// Quit ends the menu without a selection.
func (m *Menu) Quit() {
	if m.state == MenuPrompting {
		m.state = MenuQuit
		m.err = nil
	}
}

// Selected returns the chosen path once the menu is validated.
func (m *Menu) Selected() (string, bool) {
	if m.state != MenuValidated {
		return "", false
	}
	return m.items[m.choice], true
}

// WriteList prints items numbered from 1, followed by an ellipsis line when
// more exist.
func WriteList(w io.Writer, items []string, more bool) error {
	for i, item := range items {
		if _, err := fmt.Fprintf(w, "%d) %s\n", i+1, item); err != nil {
			return err
		}
	}
	if more {
		if _, err := fmt.Fprintln(w, constants.Ellipsis); err != nil {
			return err
		}
	}
	return nil
}
