package main

import (
	"fmt"

	"github.com/donghojung/mru/internal/constants"
	"github.com/donghojung/mru/internal/logging"
	"github.com/donghojung/mru/internal/mru"
	"github.com/donghojung/mru/internal/tui"
)

// app runs one mode against the store.
type app struct {
	env    *env
	store  *mru.Store
	quiet  bool
	editor string
}

// add inserts each path in order. The first failure aborts.
func (a *app) add(paths []string) error {
	if len(paths) == 0 {
		return mru.InvalidArgumentError("-a needs at least one path")
	}
	for _, p := range paths {
		canonical, err := a.store.Insert(p)
		if err != nil {
			return err
		}
		logging.Log("added %s", canonical)
	}
	return nil
}

// clean deletes the store.
func (a *app) clean() error {
	if err := a.store.Drop(); err != nil {
		return err
	}
	logging.Log("store deleted: %s", a.store.Path())
	a.printf("removed %s\n", a.store.Path())
	return nil
}

// show prints the most recent entries.
func (a *app) show() error {
	head, more, err := a.store.Peek(constants.PreviewEntries)
	if err != nil {
		return err
	}
	return tui.WriteList(a.env.stdout, head, more)
}

// tidy drops entries for files that no longer exist.
func (a *app) tidy() error {
	timer := logging.StartTimer("validate")
	dropped, err := a.store.Validate()
	if err != nil {
		timer.StopWithResult(false, err.Error())
		return err
	}
	timer.StopWithResult(true, fmt.Sprintf("%d dropped", dropped))
	a.printf("removed %d missing file(s)\n", dropped)
	return nil
}

// open searches with patterns and opens the selected match.
func (a *app) open(patterns []string) error {
	var (
		matches []string
		more    bool
		err     error
	)
	if len(patterns) == 0 {
		matches, more, err = a.store.Peek(constants.PreviewEntries)
	} else {
		matches, err = a.store.Search(patterns)
	}
	if err != nil {
		return err
	}
	logging.Debug("search %q: %d match(es)", patterns, len(matches))

	var path string
	switch len(matches) {
	case 0:
		return mru.NoMatchError(patterns)
	case 1:
		path = matches[0]
	default:
		var ok bool
		path, ok, err = a.choose(matches, more)
		if err != nil {
			return err
		}
		if !ok {
			logging.Log("selection cancelled")
			return nil
		}
	}

	canonical, err := a.store.Insert(path)
	if err != nil {
		return err
	}

	opener, err := a.env.newOpener(a.editor)
	if err != nil {
		return err
	}
	logging.Log("opening %s", canonical)
	return opener.Open(canonical)
}

// choose asks the user to pick one of several matches.
// more reports entries beyond matches that the menu cannot show.
func (a *app) choose(matches []string, more bool) (string, bool, error) {
	menu := tui.NewMenuMore(matches, more)
	if a.env.interactive() {
		return tui.RunPicker(a.env.stdin, a.env.stderr, menu)
	}
	return tui.Prompt(a.env.stdin, a.env.stdout, menu)
}

// printf writes non-essential output unless quiet.
func (a *app) printf(format string, args ...interface{}) {
	if a.quiet {
		return
	}
	fmt.Fprintf(a.env.stdout, format, args...)
}
