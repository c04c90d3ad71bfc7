package main

import (
	"fmt"

	"github.com/dhamidi/parc/parser"
	"github.com/spf13/cobra"
)

func newObjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "object [input]",
		Short:         "Validate a brace-object literal",
		Long:          "Checks input against a JSON-like grammar of nested objects with quoted keys,\ninteger or quoted values, and trailing commas. Reads from stdin when no\nargument is given.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			if !objectGrammar().Parse(parser.NewCursorString(input)) {
				return fmt.Errorf("validate object: no match")
			}

			fmt.Println("ok")
			return nil
		},
	}

	return cmd
}

// objectGrammar builds the brace-object reference grammar:
//
//	block = '{' { item } '}'
//	item  = quoted ':' unit ','
//	unit  = integer | quoted | block
//
// followed by end of input. Every item carries a trailing comma.
func objectGrammar() parser.Parser {
	block := parser.Deferred().SetName("block")

	unit := parser.Or(parser.Int(), parser.Quoted(), block)
	item := parser.Seq(parser.Quoted(), parser.String(":"), unit, parser.String(","))
	block.Bind(parser.Seq(parser.String("{"), parser.Many(item), parser.String("}")))

	return parser.Chain(block, parser.End())
}
