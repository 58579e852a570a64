package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/janpfeifer/GoSet/internal/config"
	setmcp "github.com/janpfeifer/GoSet/internal/mcp"
	"github.com/janpfeifer/GoSet/internal/session"
	"github.com/mark3labs/mcp-go/server"
	"k8s.io/klog/v2"
)

var (
	flagConfig   = flag.String("config", "", "Path to a YAML configuration file (default: built-in settings)")
	flagDuration = flag.Duration("duration", 0, "Game duration, overrides the configuration file")
	flagSeed     = flag.Uint64("seed", 0, "Dealer seed, overrides the configuration file (0: random)")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	// stdout carries the MCP protocol.
	klog.SetOutput(os.Stderr)
	defer klog.Flush()

	cfg, err := config.LoadWithOverrides(*flagConfig, *flagDuration, *flagSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := server.NewMCPServer("goset", "0.1.0")
	setmcp.NewTools(ctx, session.NewFromConfig(cfg)).Register(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
