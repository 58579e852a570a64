package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/janpfeifer/GoSet/internal/config"
	"github.com/janpfeifer/GoSet/internal/session"
	"github.com/janpfeifer/GoSet/internal/terminal"
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
	defer klog.Flush()

	cfg, err := config.LoadWithOverrides(*flagConfig, *flagDuration, *flagSeed)
	if err != nil {
		klog.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	player := terminal.NewPlayer(session.NewFromConfig(cfg), os.Stdin, os.Stdout)
	if err := player.Play(ctx); err != nil && ctx.Err() == nil {
		klog.Fatal(err)
	}
}
