package app

import (
	"bufio"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/config"
)

// confirm shows the warning and waits for ENTER. Any other input cancels
// the operation.
func confirm(warning string) error {
	fmt.Fprint(config.Stdout, pterm.Warning.Sprint(warning))

	reader := bufio.NewReader(config.Stdin)

	answer, _ := reader.ReadString('\n')

	if answer != "\n" && answer != "\r\n" {
		return errAborted
	}

	return nil
}
