package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/JackWReid/kite/internal/config"
	"github.com/JackWReid/kite/internal/editor"
)

var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (default $XDG_CONFIG_HOME/kite/config.yaml)")
	logPath := flag.String("log", "", "append debug log to this file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("kite", Version)
		return
	}

	if err := run(*configPath, *logPath, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "kite: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath, filename string) error {
	if configPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			configPath = p
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logPath == "" {
		logPath = cfg.LogFile
	}

	logger, closeLog, err := openLog(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Printf("starting kite %s", Version)
	app := editor.NewApp(filename, cfg, logger, Version)
	if err := app.Run(); err != nil {
		logger.Printf("exited with error: %v", err)
		return err
	}
	return nil
}

// openLog returns a logger writing to path, or one that discards output when
// path is empty. The terminal is in raw mode, so nothing logs to stderr.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "kite: ", log.LstdFlags), func() { f.Close() }, nil
}
