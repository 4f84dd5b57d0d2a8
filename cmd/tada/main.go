package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/idilsaglam/tada/cmd/tada/commands"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	err := commands.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
