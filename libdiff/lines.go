package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line. Only Equal, Insert and Delete
// occur in the result.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	fromChars, toChars, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(fromChars, toChars, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range splitLines(diff.Text) {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}

var (
	insertColor = color.New(color.FgGreen)
	deleteColor = color.New(color.FgRed)
	changeColor = color.New(color.FgYellow)
)

func opColor(op Op) *color.Color {
	switch op {
	case Insert:
		return insertColor
	case Delete:
		return deleteColor
	case Replace:
		return changeColor
	}
	return nil
}

// WriteLines prints the changed lines of a diff with their marks. Equal
// lines are printed only when context is set.
func WriteLines(w io.Writer, lines []Line, context bool) error {
	for _, ln := range lines {
		if ln.Op == Equal && !context {
			continue
		}
		txt := ln.Op.Mark() + " " + ln.Text
		if c := opColor(ln.Op); c != nil {
			txt = c.Sprint(txt)
		}
		if _, err := fmt.Fprintln(w, txt); err != nil {
			return err
		}
	}
	return nil
}
