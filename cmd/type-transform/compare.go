package main

import (
	"fmt"

	"github.com/acorn-io/cmd"
	transform "github.com/chanankuan/type-transform"
	"github.com/spf13/cobra"
)

type Compare struct {
	root *TypeTransform
}

func NewCompare(root *TypeTransform) *cobra.Command {
	return cmd.Command(&Compare{root: root}, cobra.Command{
		Use:   "compare LEFT RIGHT",
		Short: "Report loose and strict equality between two values",
		Args:  cobra.ExactArgs(2),
	})
}

func (o *Compare) Run(c *cobra.Command, args []string) error {
	fmt.Print(transform.ParanoidEquals(parseArg(args[0]), parseArg(args[1])))
	return nil
}
