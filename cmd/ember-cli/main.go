// Command ember-cli is an interactive REPL client for emberd.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emberdb/emberdb/server"
	"github.com/emberdb/emberdb/tui"
)

func main() {
	fs := flag.NewFlagSet("ember-cli", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "ember-cli — interactive client for emberd\n\nUsage:\n  ember-cli [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	target := fs.String("target", server.DefaultAddr, "emberd server address")
	_ = fs.Parse(os.Args[1:])

	m := tui.New(*target)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ember-cli: %v\n", err)
		os.Exit(1)
	}
}
