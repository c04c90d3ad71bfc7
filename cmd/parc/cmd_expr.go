package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/parc/parser"
	"github.com/spf13/cobra"
)

func newExprCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "expr [input]",
		Short:         "Parse an arithmetic expression and print its AST",
		Long:          "Parses an expression with +, unary -, *, parentheses, integers and quoted strings.\nReads from stdin when no argument is given.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			result, ok := parser.ParseString(exprGrammar(), input)
			if !ok {
				return fmt.Errorf("parse expression: no match")
			}

			fmt.Println(render(result))
			return nil
		},
	}

	return cmd
}

// exprGrammar builds the arithmetic reference grammar:
//
//	expr    = factor '+' expr | factor
//	factor  = bigunit '*' factor | bigunit
//	bigunit = '-' unit | unit
//	unit    = integer | quoted | '(' expr ')'
//
// followed by end of input.
func exprGrammar() parser.Parser {
	expr := parser.Deferred().SetName("expr")
	factor := parser.Deferred().SetName("factor")

	unit := parser.Or(
		parser.Int(),
		parser.Quoted(),
		parser.Apply(
			parser.Seq(parser.String("("), expr, parser.String(")")),
			func(rs []parser.Result) parser.Result { return rs[1] },
		),
	)

	bigunit := parser.Alt(
		parser.Apply(
			parser.Chain(parser.String("-"), unit),
			func(rs []parser.Result) parser.Result { return &negNode{operand: rs[1]} },
		),
		unit,
	)

	factor.Bind(parser.Alt(
		parser.Apply(
			parser.Seq(bigunit, parser.String("*"), factor),
			func(rs []parser.Result) parser.Result { return &mulNode{left: rs[0], right: rs[2]} },
		),
		bigunit,
	))

	expr.Bind(parser.Alt(
		parser.Apply(
			parser.Seq(factor, parser.String("+"), expr),
			func(rs []parser.Result) parser.Result { return &addNode{left: rs[0], right: rs[2]} },
		),
		factor,
	))

	return parser.Apply(
		parser.Chain(expr, parser.End()),
		func(rs []parser.Result) parser.Result { return rs[0] },
	)
}

type addNode struct {
	left, right parser.Result
}

func (n *addNode) Render() string {
	return "[+:" + render(n.left) + "," + render(n.right) + "]"
}

type mulNode struct {
	left, right parser.Result
}

func (n *mulNode) Render() string {
	return "[*:" + render(n.left) + "," + render(n.right) + "]"
}

type negNode struct {
	operand parser.Result
}

func (n *negNode) Render() string {
	return "[negate:" + render(n.operand) + "]"
}

func render(r parser.Result) string {
	if r == nil {
		return "_"
	}
	return r.Render()
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
