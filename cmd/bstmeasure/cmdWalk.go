package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"

	"github.com/ansel1/merry"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

type cmdWalk struct {
	order   string
	reverse bool
	out     io.Writer // os.Stdout when nil
}

func (cmd *cmdWalk) Name() string     { return "walk" }
func (cmd *cmdWalk) Synopsis() string { return "print the traversals of a tree built from integers" }
func (cmd *cmdWalk) Usage() string {
	return "walk [-order in|pre|post|all] [-reverse] <int>...\n"
}

func (cmd *cmdWalk) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.order, "order", "all", "traversal to print: in, pre, post or all")
	f.BoolVar(&cmd.reverse, "reverse", false, "walk from the end position backwards")
}

func parseOrders(s string) ([]Trees.Order, error) {
	switch s {
	case "in":
		return []Trees.Order{Trees.InOrder}, nil
	case "pre":
		return []Trees.Order{Trees.PreOrder}, nil
	case "post":
		return []Trees.Order{Trees.PostOrder}, nil
	case "all":
		return Trees.Orders(), nil
	}
	return nil, merry.Errorf("unknown order %q", s)
}

func (cmd *cmdWalk) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	orders, err := parseOrders(cmd.order)
	if err != nil {
		logrus.WithError(err).Error("bad -order")
		return subcommands.ExitUsageError
	}
	tree := Trees.New[int, uint32](uint32(f.NArg()))
	for _, a := range f.Args() {
		v, err := strconv.Atoi(a)
		if err != nil {
			logrus.WithError(err).WithField("arg", a).Error("not an integer")
			return subcommands.ExitUsageError
		}
		if _, in := tree.Insert(v); !in {
			logrus.WithField("key", v).Debug("repeated key ignored")
		}
	}
	logrus.WithField("size", tree.Size()).Debug("tree built")
	out := cmd.out
	if out == nil {
		out = os.Stdout
	}
	for _, o := range orders {
		var seq iter.Seq[int]
		if cmd.reverse {
			seq = tree.Backward(o)
		} else {
			seq = tree.All(o)
		}
		var sb strings.Builder
		for v := range seq {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
		fmt.Fprintf(out, "%s: %s\n", o, sb.String())
	}
	return subcommands.ExitSuccess
}
