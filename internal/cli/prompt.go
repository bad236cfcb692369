package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// readLine reads one line of operator input. End of input is reported as
// errInputClosed.
func (m *Menu) readLine() (string, error) {
	if !m.scanner.Scan() {
		if err := m.scanner.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return m.scanner.Text(), nil
}

// promptInt re-prompts until the operator supplies a parseable integer.
func (m *Menu) promptInt(prompt string) (int, error) {
	for {
		fmt.Fprint(m.out, prompt)
		line, err := m.readLine()
		if err != nil {
			return 0, err
		}

		value, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return value, nil
		}
		fmt.Fprintln(m.out, "Invalid number. Please try again.")
	}
}

// promptOptionalInt is promptInt with a default: a blank response keeps
// current.
func (m *Menu) promptOptionalInt(prompt string, current int) (int, error) {
	for {
		fmt.Fprint(m.out, prompt)
		line, err := m.readLine()
		if err != nil {
			return 0, err
		}

		if line == "" {
			return current, nil
		}

		value, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return value, nil
		}
		fmt.Fprintln(m.out, "Invalid number. Please try again.")
	}
}

// promptString accepts any line, including an empty one.
func (m *Menu) promptString(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	return m.readLine()
}

// promptOptionalString is promptString with a default: a blank response keeps
// current.
func (m *Menu) promptOptionalString(prompt, current string) (string, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return current, nil
	}
	return line, nil
}

// confirm re-prompts until the operator answers with a y or n.
func (m *Menu) confirm(prompt string) (bool, error) {
	for {
		fmt.Fprint(m.out, prompt)
		line, err := m.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(m.out, "Please respond with Y or N.")
	}
}
