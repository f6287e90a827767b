// Command jqlz is a small demonstration CLI around the lazyjson
// package: get a path out of a JSON file, optionally set it to a new
// scalar value first, and print the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		slog.Error("jqlz: failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("jqlz", flag.ContinueOnError)
	var (
		setStr = fs.String("set", "", "replace the value at path with this string before printing")
		setNum = fs.Float64("set-num", 0, "replace the value at path with this number before printing (requires -set-num-flag)")
		useNum = fs.Bool("set-num-flag", false, "apply -set-num; without this flag -set-num is ignored")
		diff   = fs.Bool("diff", false, "show a diff of the document before and after -set")
		cacheN = fs.Int("cache", 0, "path cache capacity; 0 disables the cache")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("usage: jqlz [flags] <file> <path>")
	}
	file, path := rest[0], rest[1]

	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}

	return queryAndMaybeSet(src, path, queryOpts{
		setStr: *setStr,
		setNum: *setNum,
		useNum: *useNum,
		diff:   *diff,
		cacheN: *cacheN,
	})
}

type queryOpts struct {
	setStr string
	setNum float64
	useNum bool
	diff   bool
	cacheN int
}
