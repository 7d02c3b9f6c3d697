package app

import (
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Shrinivasofficial/evening-stillness-reflections/export"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/osutil"
	"github.com/Shrinivasofficial/evening-stillness-reflections/report"
)

// exportAction writes every record to standard output or a file.
func exportAction(ctx *cli.Context) error {
	output := ctx.String("output")

	format := export.FormatFromPath(output)

	if f := ctx.String("format"); f != "" {
		var err error

		format, err = export.ParseFormat(f)
		if err != nil {
			return err
		}
	}

	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	doc, err := export.Collect(e.db, e.now)
	if err != nil {
		return err
	}

	var w io.Writer = e.out

	if output != "" {
		f, err := os.OpenFile(
			output,
			os.O_CREATE|os.O_WRONLY|os.O_TRUNC,
			osutil.FilePermission,
		)
		if err != nil {
			return errOutputFile.Fmt(output).Wrap(err)
		}

		defer f.Close()

		w = f
	}

	if err := export.Write(w, doc, format); err != nil {
		return errOutputFile.Fmt(output).Wrap(err)
	}

	if output != "" {
		report.Saved("export to " + output)
	}

	return nil
}
