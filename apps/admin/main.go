package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/trezcool/agenda/core"
	"github.com/trezcool/agenda/core/planner"
	logsvc "github.com/trezcool/agenda/services/logger"
	"github.com/trezcool/agenda/storage"
	"github.com/trezcool/agenda/storage/persist"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewZapLogger(logsvc.WithLevel("warn"), logsvc.WithConsole(os.Stderr))

	// set up storage
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	kvStore, err := storage.Open(ctx, conf)
	cancel()
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening %s storage: %v", conf.Storage.Driver, err), err)
	}
	gateway := persist.New(kvStore, logger, persist.WithPrefix(conf.Storage.Prefix), persist.WithTimeout(conf.Storage.Timeout))

	// start CLI
	cli := commandLine{
		store: planner.NewStore(gateway.LoadAll(planner.EmptySnapshot()), gateway),
		out:   os.Stdout,
		now:   core.NowFunc,
	}
	err = cli.run(os.Args)
	_ = kvStore.Close()
	_ = logger.Close()
	if err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
