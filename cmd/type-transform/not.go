package main

import (
	"github.com/acorn-io/cmd"
	transform "github.com/chanankuan/type-transform"
	"github.com/spf13/cobra"
)

type Not struct {
	root *TypeTransform
}

func NewNot(root *TypeTransform) *cobra.Command {
	return cmd.Command(&Not{root: root}, cobra.Command{
		Use:   "not VALUE",
		Short: "Invert a boolean value",
		Args:  cobra.ExactArgs(1),
	})
}

func (n *Not) Run(c *cobra.Command, args []string) error {
	out, err := transform.InvertBoolean(parseArg(args[0]))
	if err != nil {
		return err
	}
	return n.root.Print(out)
}
