package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wrenhold/rofigo/src/rofi"
)

// SelectCmd shows a selection dialog
type SelectCmd struct {
	Prompt     string   `arg:"" help:"Prompt telling the user what they are selecting"`
	Choices    []string `arg:"" optional:"" help:"Choices to offer; read from stdin when omitted"`
	Message    string   `help:"Message shown between the prompt and the choices (Pango markup)"`
	Selected   *int     `help:"Row to preselect"`
	PrintIndex bool     `help:"Print the selected row index instead of its text"`
}

// Run executes the select command
func (c *SelectCmd) Run(cli *CLI) error {
	r, err := cli.invoker()
	if err != nil {
		return err
	}

	choices := c.Choices
	if len(choices) == 0 {
		choices, err = readChoices(os.Stdin)
		if err != nil {
			return err
		}
	}
	if len(choices) == 0 {
		return fmt.Errorf("no choices given on the command line or stdin")
	}

	index, key, err := r.Select(context.Background(), c.Prompt, choices, &rofi.SelectOptions{
		Message:  c.Message,
		Selected: c.Selected,
	})
	if err != nil {
		return err
	}
	if index < 0 {
		return errCancelled
	}

	if c.PrintIndex {
		fmt.Printf("%d %d\n", index, key)
	} else {
		fmt.Println(choices[index])
	}
	return nil
}

// readChoices reads one choice per line, dropping trailing blanks.
func readChoices(r io.Reader) ([]string, error) {
	var choices []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		choices = append(choices, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read choices: %w", err)
	}
	for len(choices) > 0 && strings.TrimSpace(choices[len(choices)-1]) == "" {
		choices = choices[:len(choices)-1]
	}
	return choices, nil
}
