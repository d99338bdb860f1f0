package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/praos-dev/praos-go/cli/node"
	"github.com/praos-dev/praos-go/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "PraosGo\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates a PraosGo instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "praos-go"
	ctl.Version = config.Version
	ctl.Usage = "Protocol bootstrap validator for Praos nodes"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, node.NewCommands()...)
	return ctl
}
