package main

import (
	"github.com/acorn-io/cmd"
	transform "github.com/chanankuan/type-transform"
	"github.com/spf13/cobra"
)

type Number struct {
	root *TypeTransform
}

func NewNumber(root *TypeTransform) *cobra.Command {
	return cmd.Command(&Number{root: root}, cobra.Command{
		Use:   "number VALUE",
		Short: "Convert a value to a number",
		Args:  cobra.ExactArgs(1),
	})
}

func (n *Number) Run(c *cobra.Command, args []string) error {
	out, err := transform.ConvertToNumber(parseArg(args[0]))
	if err != nil {
		return err
	}
	return n.root.Print(out)
}
