package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func fmtMain(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Diff && cfg.InFormat != nil && cfg.InFormat.IsMsgpack() {
		return fmt.Errorf("%w: -d needs a text input format", cli.ErrUsage)
	}
	for _, arg := range inputArgs(args) {
		raw, docs, err := cfg.readArg(cc, arg)
		if err != nil {
			return err
		}
		if !cfg.Diff {
			if err := writeDocs(cc.Out, docs, cfg.encOpts(cc.Out, true)...); err != nil {
				return fmt.Errorf("error formatting %s: %w", arg, err)
			}
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := writeDocs(buf, docs, cfg.encOpts(buf, false)...); err != nil {
			return fmt.Errorf("error formatting %s: %w", arg, err)
		}
		if err := writeLineDiff(cc.Out, string(raw), buf.String()); err != nil {
			return err
		}
	}
	return nil
}

// writeLineDiff writes the lines of from and to prefixed by "-" when only
// in from, "+" when only in to and " " otherwise.
func writeLineDiff(w io.Writer, from, to string) error {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	for i := range diffs {
		diff := &diffs[i]
		prefix := " "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			if !strings.HasSuffix(line, "\n") {
				line += "\n"
			}
			if _, err := io.WriteString(w, prefix+line); err != nil {
				return err
			}
		}
	}
	return nil
}
