package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/costar/explain"
	"github.com/katalvlaran/costar/oracle"
)

// numberName is what the distance is called: the reference's last name.
// "Kevin Bacon" gives "Bacon".
func numberName(reference string) string {
	fields := strings.Fields(reference)
	if len(fields) == 0 {
		return reference
	}

	return fields[len(fields)-1]
}

// renderAnswer prints one answer the way the interactive oracle does.
func renderAnswer(w io.Writer, ans explain.Answer) error {
	num := numberName(ans.Reference)

	var err error
	switch ans.Kind {
	case explain.KindReference:
		_, err = fmt.Fprintf(w, "%s has a %s number of 0. They ARE %s!\n", ans.Target, num, ans.Reference)
	case explain.KindConnected:
		if _, err = fmt.Fprintf(w, "%s has a %s number of %d.\n", ans.Target, num, ans.Distance); err != nil {
			return err
		}
		for _, line := range ans.Lines() {
			if _, err = fmt.Fprintf(w, "    %s\n", line); err != nil {
				return err
			}
		}
	default:
		_, err = fmt.Fprintf(w, "%s has a %s number of infinity!\n", ans.Target, num)
	}

	return err
}

// interactive prompts for names until a blank line or end of input.
func interactive(in io.Reader, out io.Writer, orc *oracle.Oracle) error {
	num := numberName(orc.Reference())
	fmt.Fprintf(out, "Welcome to the Oracle of %s!\n", num)

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter actor/actress name: ")
		if !sc.Scan() {
			break
		}
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			break
		}

		ans, err := orc.AnswerQuery(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		if err := renderAnswer(out, ans); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fmt.Fprintf(out, "\nThank you for using the Oracle of %s.\n", num)

	return nil
}
