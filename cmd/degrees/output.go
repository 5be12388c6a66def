package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/degrees/separation"
)

// checkFormat rejects unknown --output values before any work is done.
func checkFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}

// render writes one chain, or a slice of chains, in the given format.
func render(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		switch c := v.(type) {
		case *separation.Chain:
			return writeLines(w, c.Lines())
		case []*separation.Chain:
			for _, chain := range c {
				if err := writeLines(w, summary(chain)); err != nil {
					return err
				}
			}
			return nil
		}
		return fmt.Errorf("cannot render %T as text", v)
	}
	return checkFormat(format)
}

// summary is the one-line batch form of a chain.
func summary(c *separation.Chain) []string {
	if !c.Connected {
		return []string{fmt.Sprintf("%s → %s: not connected", c.Source.Name, c.Target.Name)}
	}
	return []string{fmt.Sprintf("%s → %s: %d", c.Source.Name, c.Target.Name, c.Degrees())}
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
