package tui

import (
	"bufio"
	"fmt"
	"io"
)

// Prompt runs menu as a line-oriented dialog: it prints the list, then reads
// lines from in until the menu leaves the prompting state. End of input
// quits. It returns the chosen path, or ok=false if the user quit.
func Prompt(in io.Reader, out io.Writer, menu *Menu) (path string, ok bool, err error) {
	if err := WriteList(out, menu.Items(), menu.More()); err != nil {
		return "", false, err
	}

	scanner := bufio.NewScanner(in)
	for menu.State() == MenuPrompting {
		fmt.Fprintf(out, "Select [1-%d, q]: ", len(menu.Items()))

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", false, fmt.Errorf("failed to read selection: %w", err)
			}
			menu.Quit()
			fmt.Fprintln(out)
			break
		}

		if menu.Feed(scanner.Text()) == MenuPrompting && menu.Err() != nil {
			fmt.Fprintln(out, menu.Err())
		}
	}

	path, ok = menu.Selected()
	return path, ok, nil
}
