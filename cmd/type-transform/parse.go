package main

import (
	"github.com/acorn-io/cmd"
	transform "github.com/chanankuan/type-transform"
	"github.com/spf13/cobra"
)

type Parse struct {
	root *TypeTransform

	Fallback string `usage:"Value to return when decoding fails"`
}

func NewParse(root *TypeTransform) *cobra.Command {
	return cmd.Command(&Parse{root: root}, cobra.Command{
		Use:   "parse TEXT",
		Short: "Parse structured-data text, substituting a fallback on failure",
		Args:  cobra.ExactArgs(1),
	})
}

func (p *Parse) Run(c *cobra.Command, args []string) error {
	var fallback any
	if p.Fallback != "" {
		fallback = parseArg(p.Fallback)
	}
	return p.root.Print(transform.SafeJSONParse(args[0], fallback))
}
