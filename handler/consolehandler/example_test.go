package consolehandler_test

import (
	"os"

	"github.com/philipp01105/gklog/core"
	"github.com/philipp01105/gklog/formatter"
	"github.com/philipp01105/gklog/handler/consolehandler"
)

// Create a console handler writing to stdout and enable colors when
// stdout is a terminal.
func ExampleNewConsoleHandler() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    os.Stdout,
		Formatter: formatter.NewTextFormatter(formatter.Config{AlignLabels: true}),
	})
	defer h.Close()

	h.Init()
}

func ExampleColorFor() {
	start, reset := consolehandler.ColorFor(core.FatalLevel)
	os.Stdout.WriteString(start + "fatal" + reset)
}
