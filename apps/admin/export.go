package main

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/trezcool/agenda/storage/persist"
)

// export writes the export document to `path`. An empty path means the dated export
// file when stdout is a terminal, and stdout otherwise.
func (cli *commandLine) export(path string) error {
	now := cli.now()
	if path == "" && isTerminalFunc() {
		path = persist.ExportFilename(now)
	}
	if path == "" || path == "-" {
		return persist.WriteExport(cli.out, cli.store.Snapshot(), now)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating export file")
	}
	if err = persist.WriteExport(f, cli.store.Snapshot(), now); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return errors.Wrap(err, "closing export file")
	}
	_, err = io.WriteString(cli.out, "exported to "+path+"\n")
	return err
}
