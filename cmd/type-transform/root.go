package main

import (
	"encoding/json"
	"fmt"

	"github.com/acorn-io/cmd"
	transform "github.com/chanankuan/type-transform"
	"github.com/spf13/cobra"
)

type TypeTransform struct {
	Output string `usage:"Output format (text or json)" short:"o" default:"text"`
}

func New() *cobra.Command {
	root := &TypeTransform{}
	return cmd.Command(root, cobra.Command{
		Use:   "type-transform",
		Short: "Loose value conversion utilities",
	})
}

func (t *TypeTransform) Customize(c *cobra.Command) {
	c.CompletionOptions.HiddenDefaultCmd = true
	c.SilenceUsage = true
	c.AddCommand(
		NewAdd(t),
		NewStringify(t),
		NewNumber(t),
		NewNot(t),
		NewCoerce(t),
		NewParse(t),
		NewCompare(t),
	)
}

func (t *TypeTransform) Run(c *cobra.Command, args []string) error {
	return c.Usage()
}

// parseArg decodes a CLI argument defensively: valid structured-data
// text decodes, anything else is taken as a literal string.
func parseArg(s string) any {
	return transform.SafeJSONParse(s, s)
}

func (t *TypeTransform) Print(v any) error {
	if t.Output == "json" {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	out, ok, err := transform.StringifyValue(v)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("value has no text representation")
	}
	fmt.Println(out)
	return nil
}
