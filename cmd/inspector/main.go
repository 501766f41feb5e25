package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/sbip-sg/SolidiFI-benchmark/internal/app"
)

func main() {
	// glog registers on the stdlib flag set; cobra owns the arguments
	_ = flag.Set("logtostderr", "true")
	_ = flag.CommandLine.Parse(nil)
	defer glog.Flush()

	if err := app.BuildRoot().Execute(); err != nil {
		glog.Error(err)
		os.Exit(1)
	}
}
