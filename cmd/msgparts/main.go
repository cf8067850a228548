// Command msgparts reads Twitch IRC lines and prints each chat message split
// into text, emote and codeblock parts.
//
// Usage:
//
//	msgparts [-in file] [-format parts|json|telegram|html] [-emoji id=custom,...] [-v]
package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	msgparser "github.com/riverfjs/msgparser-go"
)

func main() {
	in := flag.String("in", "", "input file with one IRC line per line (default: stdin)")
	format := flag.String("format", "parts", "output format: parts, json, telegram or html")
	emoji := flag.String("emoji", "", "comma-separated emote-id=custom-emoji-id pairs for telegram output")
	maxLen := flag.Int("max", msgparser.DefaultMaxMessageLength, "telegram message length limit in UTF-16 code units")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	var err error
	var l *zap.Logger
	if *verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer l.Sync() //nolint:errcheck
	msgparser.SetLogger(l)

	cfg, err := parseConfig(*format, *emoji, *maxLen)
	if err != nil {
		l.Fatal("flags", zap.Error(err))
	}

	var r io.Reader = os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			l.Fatal("open input", zap.String("path", *in), zap.Error(err))
		}
		defer f.Close()
		r = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := bufio.NewWriter(os.Stdout)
	failed, err := run(ctx, l, cfg, r, out)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		l.Error("run", zap.Error(err))
		os.Exit(1)
	}
	if failed > 0 {
		l.Warn("some lines failed", zap.Int("failed", failed))
		os.Exit(1)
	}
}
