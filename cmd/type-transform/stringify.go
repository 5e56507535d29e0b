package main

import (
	"fmt"

	"github.com/acorn-io/cmd"
	transform "github.com/chanankuan/type-transform"
	"github.com/spf13/cobra"
)

type Stringify struct {
	root *TypeTransform
}

func NewStringify(root *TypeTransform) *cobra.Command {
	return cmd.Command(&Stringify{root: root}, cobra.Command{
		Use:   "stringify VALUE",
		Short: "Render a value as text",
		Args:  cobra.ExactArgs(1),
	})
}

func (s *Stringify) Run(c *cobra.Command, args []string) error {
	out, ok, err := transform.StringifyValue(parseArg(args[0]))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("value has no text representation")
	}
	fmt.Println(out)
	return nil
}
