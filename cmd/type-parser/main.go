// Package main provides the CLI entrypoint for type-parser.
//
// type-parser converts text into typed values the way the parser package
// does, for trying out type expressions and configuration files:
//
//	type-parser parse "a=1,b=2" --type 'map[string]int'
//	type-parser check 'container.List[time.Duration]' 'map[string]chan int'
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// Globals are flags shared by every command.
type Globals struct {
	Config  string `help:"YAML configuration file." short:"c" type:"existingfile"`
	Verbose bool   `help:"Log strategy decisions to stderr." short:"v"`

	stdout io.Writer `kong:"-"`
	stderr io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Parse      ParseCmd      `cmd:"" help:"Parse input into a value of the given type."`
	Check      CheckCmd      `cmd:"" help:"Report whether type expressions can be parsed."`
	Types      TypesCmd      `cmd:"" help:"List the type names known to the parser."`
	ShowConfig ShowConfigCmd `cmd:"" help:"Print the effective configuration."`
	Version    VersionCmd    `cmd:"" help:"Print version information."`
}

func run(args []string, stdout, stderr io.Writer) error {
	cli := &CLI{Globals: Globals{stdout: stdout, stderr: stderr}}

	k, err := kong.New(cli,
		kong.Name("type-parser"),
		kong.Description("Convert text into typed values."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}

	ctx, err := k.Parse(args)
	if err != nil {
		return err
	}

	return ctx.Run(&cli.Globals)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = io.WriteString(os.Stderr, "type-parser: "+err.Error()+"\n")
		os.Exit(1)
	}
}
