package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/SystemBuilders/dll/internal/config"
	"github.com/SystemBuilders/dll/internal/dll"
	"github.com/SystemBuilders/dll/internal/logger"
	"github.com/SystemBuilders/dll/internal/node"
	"github.com/SystemBuilders/dll/internal/store"
	"github.com/rs/zerolog"
)

func main() {
	serve := flag.Bool("serve", false, "run the list node as a http server")
	reverse := flag.Bool("reverse", false, "reverse the list before printing it")
	unique := flag.Bool("unique", false, "skip values already in the list")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-serve] | [-reverse] [-unique] [--] [value ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %s\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Level(), os.Stderr)

	if *serve {
		if err := node.Start(store.NewListStore(log), cfg, log); err != nil {
			log.Fatal().Err(err).Msg("node stopped")
		}
		return
	}

	if err := run(os.Stdout, flag.Args(), *reverse, *unique, log); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

// run builds a list from args and prints it to w in both directions.
func run(w io.Writer, args []string, reverse, unique bool, log zerolog.Logger) error {
	list := dll.NewDoublyLinkedList()
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("parsing value %q: %w", arg, err)
		}
		insert := list.Insert
		if unique {
			insert = list.InsertUnique
		}
		if err := insert(dll.NewNode(v)); err != nil {
			log.Warn().Int("value", v).Err(err).Msg("skipped")
		}
	}
	if reverse {
		list.Reverse()
	}

	if err := list.TraverseForward(w); err != nil {
		return err
	}
	return list.TraverseBackward(w)
}
