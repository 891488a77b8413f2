package main

import (
	"log/slog"
	"net/netip"
	"net/url"
	"reflect"
	"time"

	"type-parser/internal/config"
	"type-parser/parser"
)

func (g *Globals) logger() *slog.Logger {
	level := slog.LevelInfo
	if g.Verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(g.stderr, &slog.HandlerOptions{Level: level}))
}

func (g *Globals) config() (*config.Config, error) {
	if g.Config == "" {
		return config.Default(), nil
	}

	return config.LoadFile(g.Config)
}

// engine builds the parser used by every command: the defaults plus a few
// standard library types worth trying from a shell.
func (g *Globals) engine() (*parser.Engine, error) {
	cfg, err := g.config()
	if err != nil {
		return nil, err
	}

	b := parser.NewBuilder().
		WithLogger(g.logger()).
		RegisterEnum(parser.Enum(
			time.January, time.February, time.March, time.April, time.May, time.June,
			time.July, time.August, time.September, time.October, time.November, time.December,
		)).
		RegisterEnum(parser.Enum(
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
		)).
		RegisterFactory(url.Parse).
		RegisterTypeName(reflect.TypeFor[netip.Addr](), reflect.TypeFor[netip.Prefix]())

	if err := cfg.Apply(b); err != nil {
		return nil, err
	}

	return b.Build()
}
