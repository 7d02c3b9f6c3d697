// Package report prints command outcomes and sends desktop notifications
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/osutil"
)

// Saved confirms that a record was written.
func Saved(what string) {
	pterm.Success.Printfln("%s saved successfully", what)
}

// Deleted confirms how many records were removed.
func Deleted(n int, what string) {
	if n == 1 {
		pterm.Success.Printfln("1 %s deleted", what)
		return
	}

	pterm.Success.Printfln("%d %ss deleted", n, what)
}

// Celebrate prints a streak milestone message.
func Celebrate(msg string) {
	pterm.Info.Println(msg)
}

func Warn(msg string) {
	pterm.Warning.Println(msg)
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
