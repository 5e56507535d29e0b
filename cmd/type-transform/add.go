package main

import (
	"github.com/acorn-io/cmd"
	transform "github.com/chanankuan/type-transform"
	"github.com/spf13/cobra"
)

type Add struct {
	root *TypeTransform
}

func NewAdd(root *TypeTransform) *cobra.Command {
	return cmd.Command(&Add{root: root}, cobra.Command{
		Use:   "add LEFT RIGHT",
		Short: "Combine two values with type-aware addition",
		Args:  cobra.ExactArgs(2),
	})
}

func (a *Add) Run(c *cobra.Command, args []string) error {
	out, err := transform.AddValues(parseArg(args[0]), parseArg(args[1]))
	if err != nil {
		return err
	}
	return a.root.Print(out)
}
