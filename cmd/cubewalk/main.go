// Command cubewalk walks a monkey map twice, once wrapping around the flat
// map and once around the folded cube, and prints both passwords.
//
//	cubewalk            # built-in example notes
//	cubewalk real       # inputs.real from cubewalk.yaml
//	cubewalk --input notes.txt --log-level debug
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("cubewalk failed", "error", err)
		os.Exit(1)
	}
}
