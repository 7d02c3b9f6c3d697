package main

import (
	"os"

	"github.com/Shrinivasofficial/evening-stillness-reflections/app"
	"github.com/Shrinivasofficial/evening-stillness-reflections/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
