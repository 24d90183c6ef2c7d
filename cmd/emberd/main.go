// Command emberd is the emberdb server daemon.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/emberdb/emberdb/server"
)

var version = "dev"

func main() {
	fs := flag.NewFlagSet("emberd", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "emberd — in-memory key/value store daemon\n\nUsage:\n  emberd [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	listen := fs.String("listen", server.DefaultAddr, "client listen address")
	showVersion := fs.Bool("version", false, "show version and exit")

	_ = fs.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("emberd %s\n", version)
		return
	}

	if err := run(*listen); err != nil {
		log.Fatal(err)
	}
}

func run(listen string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(listen)
	return srv.ListenAndServe(ctx)
}
