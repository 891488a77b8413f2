package main

import (
	"fmt"
	"slices"

	"github.com/davecgh/go-spew/spew"

	"type-parser/format"
	"type-parser/internal/config"
	"type-parser/internal/diagnostic"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type ParseCmd struct {
	Input string `arg:"" help:"Text to parse."`
	Type  string `help:"Target type expression, e.g. 'map[string][]int'." short:"t" required:""`
	Dump  bool   `help:"Dump the Go value instead of formatting it back to text." short:"d"`
}

func (c *ParseCmd) Run(g *Globals) error {
	e, err := g.engine()
	if err != nil {
		return err
	}

	target, err := e.TypeOf(c.Type)
	if err != nil {
		return err
	}

	v, err := e.Parse(c.Input, target)
	if err != nil {
		return err
	}

	if c.Dump {
		dumper.Fdump(g.stdout, v)
		return nil
	}

	null, _ := e.NullString()
	_, err = fmt.Fprintln(g.stdout, format.TextWithNull(v, e.Splitter(), null))
	return err
}

type CheckCmd struct {
	Exprs []string `arg:"" name:"expr" help:"Type expressions to check."`
}

func (c *CheckCmd) Run(g *Globals) error {
	e, err := g.engine()
	if err != nil {
		return err
	}

	d := diagnostic.Check(e, c.Exprs...)
	for _, item := range d.All() {
		fmt.Fprintf(g.stdout, "%s: %s\n", item.Severity, item)
	}

	if d.HasErrors() {
		return fmt.Errorf("%d of %d type expressions cannot be parsed", len(d.Errors), len(c.Exprs))
	}

	return nil
}

type TypesCmd struct{}

func (c *TypesCmd) Run(g *Globals) error {
	e, err := g.engine()
	if err != nil {
		return err
	}

	names := e.TypeNames()
	slices.Sort(names)

	for _, name := range names {
		fmt.Fprintln(g.stdout, name)
	}

	return nil
}

type ShowConfigCmd struct{}

func (c *ShowConfigCmd) Run(g *Globals) error {
	cfg, err := g.config()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	_, err = g.stdout.Write(data)
	return err
}
