package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/trezcool/agenda/core/planner"
)

var (
	isTerminalFunc = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) } // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	store *planner.Store
	out   io.Writer
	now   func() time.Time
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  export [-out FILE] - export every collection as JSON")
	fmt.Fprintln(cli.out, "  gpa                - print the grade report")
	fmt.Fprintln(cli.out, "  due                - print the overdue and due-soon tasks")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	exportCmd := flag.NewFlagSet("export", flag.ContinueOnError)
	exportCmd.SetOutput(cli.out)
	exportOut := exportCmd.String("out", "", "The file to write to, \"-\" for stdout. Defaults to agenda-export-YYYY-MM-DD.json on a terminal, stdout otherwise.")

	switch args[1] {
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			if err == flag.ErrHelp {
				return errHelp
			}
			return err
		}
		return cli.export(*exportOut)
	case "gpa":
		return cli.gpa()
	case "due":
		return cli.due()
	default:
		cli.printUsage()
		return errHelp
	}
}
