package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/lazyjson/lazyjson/doc"
)

func queryAndMaybeSet(src []byte, path string, opts queryOpts) error {
	var parseOpts []doc.Option
	if opts.cacheN > 0 {
		parseOpts = append(parseOpts, doc.WithPathCache(opts.cacheN))
	}

	d, err := doc.Parse(src, parseOpts...)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	var before []byte
	if opts.diff && (opts.setStr != "" || opts.useNum) {
		before, err = d.Dump()
		if err != nil {
			return err
		}
	}

	if opts.setStr != "" {
		if err := d.Set(path, doc.NewString(opts.setStr)); err != nil {
			return fmt.Errorf("setting %s: %w", path, err)
		}
	} else if opts.useNum {
		if err := d.Set(path, doc.NewNumber(opts.setNum)); err != nil {
			return fmt.Errorf("setting %s: %w", path, err)
		}
	}

	if before != nil {
		after, err := d.Dump()
		if err != nil {
			return err
		}
		printDiff(before, after)
	}

	e, err := d.Get(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	out, err := d.ElementToString(e)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}

	printResult(path, out)
	return nil
}

func printResult(path string, value []byte) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(string(value))
		return
	}
	label := color.New(color.FgCyan, color.Bold).Sprintf("%s:", path)
	fmt.Printf("%s %s\n", label, color.GreenString(string(value)))
}

func printDiff(before, after []byte) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(before), string(after), false)
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(dmp.DiffPrettyText(diffs))
		return
	}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			fmt.Print(color.GreenString(d.Text))
		case diffmatchpatch.DiffDelete:
			fmt.Print(color.RedString(d.Text))
		default:
			fmt.Print(d.Text)
		}
	}
	fmt.Println()
}
