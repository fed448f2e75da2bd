package commands

import "github.com/sirupsen/logrus"

type Context struct {
	Logger *logrus.Logger
}

var Cli struct {
	Verbose bool `help:"Enable debug logging." short:"v" env:"CHARTFMT_VERBOSE"`

	Demo    DemoCmd    `cmd:"" help:"Render the multi-panel formatting demo to a PNG."`
	Ticks   TicksCmd   `cmd:"" help:"Show the tick plan for a date range."`
	Preview PreviewCmd `cmd:"" help:"Interactive terminal preview of the demo series."`
}

// NewContext builds the run context from the parsed global flags.
func NewContext() *Context {
	logger := logrus.New()
	if Cli.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return &Context{Logger: logger}
}
