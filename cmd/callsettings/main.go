// Package main is the entry point for the callsettings CLI. It shows the
// call settings a client would use and can join a LiveKit room with them.
package main

import (
	"log"
	"os"

	"github.com/am-sokolov/livekit-call-settings/cmd/callsettings/internal/commands"
)

func main() {
	if err := commands.NewRootCommand(os.Stdout).Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
