// Command bstmeasure prints the traversals of a Trees.Tree and measures it
// against other ordered containers.
package main

import (
	"context"
	"flag"
	"os"
	"testing"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

func main() {
	testing.Init()
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&cmdWalk{}, "")
	subcommands.Register(&cmdBench{}, "")
	verbose := flag.Bool("v", false, "log at debug level")
	flag.Parse()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
