// dysectctl is a trivial line-oriented REPL over a dysect.HashMap. It
// exists to exercise the map's public operations from outside the
// package, the same way a user's own program would; it carries no
// logic of its own beyond parsing commands.
//
// Usage:
//
//	dysectctl [-script file]
//
// Commands, one per line: put KEY VALUE, get KEY, erase KEY, size,
// clear, each.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/fallnlove/dysect-hash-table"
)

func main() {
	script := flag.String("script", "", "read commands from file instead of stdin")
	flag.Parse()

	in := os.Stdin
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := run(in, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes every command read from in, writing results to out. It
// keeps going after a per-line error (a malformed command or an
// unparsable value) and returns the accumulated errors at the end, so a
// batch script is not aborted by one bad line. A miss on `get` is not an
// error: it prints "not found".
func run(in io.Reader, out io.Writer) error {
	m := dysect.New[string, int64]()

	var errs *multierror.Error
	scanner := bufio.NewScanner(in)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		if err := execute(m, scanner.Text(), out); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %w", lineNo, err))
		}
	}
	if err := scanner.Err(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}

func execute(m *dysect.HashMap[string, int64], line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "put":
		if len(fields) != 3 {
			return fmt.Errorf("usage: put KEY VALUE")
		}
		val, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return fmt.Errorf("bad value %q: %w", fields[2], err)
		}
		isNew := m.Insert(fields[1], val)
		fmt.Fprintf(out, "inserted=%t\n", isNew)

	case "get":
		if len(fields) != 2 {
			return fmt.Errorf("usage: get KEY")
		}
		v, err := m.At(fields[1])
		if err != nil {
			fmt.Fprintln(out, "not found")
			return nil
		}
		fmt.Fprintln(out, v)

	case "erase":
		if len(fields) != 2 {
			return fmt.Errorf("usage: erase KEY")
		}
		fmt.Fprintf(out, "removed=%t\n", m.Erase(fields[1]))

	case "size":
		fmt.Fprintln(out, m.Size())

	case "clear":
		m.Clear()

	case "each":
		m.Each(func(key string, val int64) bool {
			fmt.Fprintf(out, "%s=%d\n", key, val)
			return false
		})

	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}
