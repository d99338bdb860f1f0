package main

import (
	"os"

	"github.com/praos-dev/praos-go/cli/app"
)

func main() {
	ctl := app.New()

	if err := ctl.Run(os.Args); err != nil {
		panic(err)
	}
}
