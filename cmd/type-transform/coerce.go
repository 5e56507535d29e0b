package main

import (
	"github.com/acorn-io/cmd"
	transform "github.com/chanankuan/type-transform"
	"github.com/spf13/cobra"
)

type Coerce struct {
	root *TypeTransform
}

func NewCoerce(root *TypeTransform) *cobra.Command {
	return cmd.Command(&Coerce{root: root}, cobra.Command{
		Use:   "coerce TYPE VALUE",
		Short: "Coerce a value to a target type",
		Long:  "Coerce a value to one of: string, number, boolean, bigint, object, symbol, undefined.",
		Args:  cobra.ExactArgs(2),
	})
}

func (o *Coerce) Run(c *cobra.Command, args []string) error {
	out, err := transform.CoerceToType(parseArg(args[1]), args[0])
	if err != nil {
		return err
	}
	return o.root.Print(out)
}
