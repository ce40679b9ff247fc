package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/aelexs/utctime/pkg/utctime"
)

type command struct {
	args    int
	summary string
	run     func(e *env, args []string) error
}

var commands = map[string]command{
	"now": {
		summary: "print the current instant",
		run: func(e *env, _ []string) error {
			return e.describe(e.provider.CurrentInstant())
		},
	},
	"describe": {
		args:    1,
		summary: "print every representation of an RFC 3339 timestamp",
		run: func(e *env, args []string) error {
			i, err := e.parseInstant(args[0])
			if err != nil {
				return err
			}
			return e.describe(i)
		},
	},
	"millis": {
		args:    1,
		summary: "convert an RFC 3339 timestamp to epoch milliseconds",
		run: func(e *env, args []string) error {
			i, err := e.parseInstant(args[0])
			if err != nil {
				return err
			}
			return e.println(i.UnixMilli())
		},
	},
	"nanos": {
		args:    1,
		summary: "convert an RFC 3339 timestamp to epoch nanoseconds",
		run: func(e *env, args []string) error {
			i, err := e.parseInstant(args[0])
			if err != nil {
				return err
			}
			return e.println(i.UnixNano())
		},
	},
	"ticks": {
		args:    1,
		summary: "convert an RFC 3339 timestamp to 100ns ticks since year 1",
		run: func(e *env, args []string) error {
			i, err := e.parseInstant(args[0])
			if err != nil {
				return err
			}
			return e.println(i.Ticks())
		},
	},
	"from-millis": {
		args:    1,
		summary: "convert epoch milliseconds to RFC 3339",
		run: func(e *env, args []string) error {
			t, err := utctime.FromEpochMillisString(args[0])
			if err != nil {
				return err
			}
			return e.printInstant(t)
		},
	},
	"from-nanos": {
		args:    1,
		summary: "convert epoch nanoseconds to RFC 3339 (truncated to 100ns)",
		run: func(e *env, args []string) error {
			t, err := utctime.FromEpochNanosString(args[0])
			if err != nil {
				return err
			}
			return e.printInstant(t)
		},
	},
	"from-ticks": {
		args:    1,
		summary: "convert 100ns ticks since year 1 to RFC 3339",
		run: func(e *env, args []string) error {
			ticks, err := utctime.ParseEpoch(args[0])
			if err != nil {
				return err
			}
			return e.println(utctime.FromTicks(ticks))
		},
	},
}

func (e *env) describe(i utctime.Instant) error {
	rows := []struct {
		label string
		value any
	}{
		{"instant", i},
		{"ticks", i.Ticks()},
		{"millis", i.UnixMilli()},
		{"nanos", i.UnixNano()},
	}

	w := tabwriter.NewWriter(e.out, 0, 0, 1, ' ', 0)
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s:\t%v\n", row.label, row.value); err != nil {
			return err
		}
	}
	return w.Flush()
}

// PrintUsage writes the command summary to w.
func PrintUsage(w io.Writer) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprint(tw, "usage: utctime <command> [argument]\n\n"); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(tw, "  %s\t%s\n", name, commands[name].summary); err != nil {
			return err
		}
	}
	return tw.Flush()
}
