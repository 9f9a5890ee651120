package main

import (
	"os"

	"github.com/goliatone/go-calcform/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.L.Error("calcform failed", "err", err)
		os.Exit(1)
	}
}
