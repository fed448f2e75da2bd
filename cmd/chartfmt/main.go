package main

import (
	commands "github.com/akasprzok/chartfmt/internal/commands"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := kong.Parse(&commands.Cli,
		kong.Name("chartfmt"),
		kong.Description("Opinionated date and log axis formatting for go-chart, with a demo renderer and terminal preview."),
	)
	err := ctx.Run(commands.NewContext())
	ctx.FatalIfErrorf(err)
}
