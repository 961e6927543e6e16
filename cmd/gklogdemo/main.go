package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/philipp01105/gklog/logger"
)

// Example demonstrating gklog usage.
// Usage: ./gklogdemo [-level info]
func main() {
	levelName := flag.String("level", logger.DefaultLevel.String(), "minimum level to print (trace, debug, info, warning, error, fatal)")
	flag.Parse()

	level, err := logger.ParseLevel(*levelName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Detect color support once, before the first colored line matters
	logger.Init()
	logger.SetLevel(level)

	logger.Tracef("entering main with %d args", len(os.Args))
	logger.Debugf("level set to %s", level)
	logger.Infof("hello %s", "world")
	logger.Warningf("disk at %d%%", 91)
	logger.Errorf("oops: %v", "something happened")
	logger.Fatalf("still running after fatal")

	// Literal percent signs belong in arguments, not the format string
	logger.Infof("%s", "100% done")
}
