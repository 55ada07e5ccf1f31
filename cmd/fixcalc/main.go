package main

import (
	"fmt"
	"io"
	"log"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/shabbyrobe/go-fixnum"
)

const usageExamples = `
  fixcalc 3 '*' 4
  fixcalc --width 1 100 '*' 3
  fixcalc --width 16 170141183460469231731687303715884105727 + 1
  fixcalc --dump neg 5
  fixcalc -- -3 - -2

Binary operators:
  + - * / % & | ^ &^ << >> < <= > >= == !=

Unary operators:
  neg not abs

Negative left operands need a '--' before them so they are not read as
flags. Right shifts are logical.`

type calcConfig struct {
	width int
	dump  bool
}

func main() {
	if err := makeFixcalcCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func makeFixcalcCommand() *cobra.Command {
	var config calcConfig

	command := &cobra.Command{
		Use:           "fixcalc [--width N] [--dump] (<a> <op> <b> | <unary> <a>)",
		Short:         "Evaluate an expression on fixed-width two's-complement integers",
		Example:       usageExamples,
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return calcWidth(cmd.OutOrStdout(), config, args)
		},
	}
	command.Flags().IntVarP(&config.width, "width", "w", 8, "Width of the integers in bytes (1, 2, 3, 4, 8, 16, 32, 64, 128 or 256)")
	command.Flags().BoolVar(&config.dump, "dump", false, "Dump the little-endian cells of the result")
	command.Flags().SetInterspersed(false)

	return command
}

func calcWidth(out io.Writer, config calcConfig, args []string) error {
	switch config.width {
	case 1:
		return calc[[1]byte](out, config, args)
	case 2:
		return calc[[2]byte](out, config, args)
	case 3:
		return calc[[3]byte](out, config, args)
	case 4:
		return calc[[4]byte](out, config, args)
	case 8:
		return calc[[8]byte](out, config, args)
	case 16:
		return calc[[16]byte](out, config, args)
	case 32:
		return calc[[32]byte](out, config, args)
	case 64:
		return calc[[64]byte](out, config, args)
	case 128:
		return calc[[128]byte](out, config, args)
	case 256:
		return calc[[256]byte](out, config, args)
	default:
		return errors.Newf("fixcalc: unsupported width %d", config.width)
	}
}

func calc[S fixnum.Storage](out io.Writer, config calcConfig, args []string) error {
	var result fixnum.Int[S]

	if len(args) == 2 {
		a, err := fixnum.ParseInt[S](args[1])
		if err != nil {
			return err
		}
		switch args[0] {
		case "neg":
			result = a.Neg()
		case "not":
			result = a.Not()
		case "abs":
			result = a.Abs()
		default:
			return errors.Newf("fixcalc: unknown unary operator %q", args[0])
		}

	} else {
		a, err := fixnum.ParseInt[S](args[0])
		if err != nil {
			return err
		}
		b, err := fixnum.ParseInt[S](args[2])
		if err != nil {
			return err
		}

		op := args[1]
		if cmp, ok := compare(a, b, op); ok {
			_, err := fmt.Fprintln(out, cmp)
			return err
		}
		if result, err = arith(a, b, op); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(out, result.String()); err != nil {
		return err
	}
	if config.dump {
		spew.Fdump(out, result.Raw())
	}
	return nil
}

func compare[S fixnum.Storage](a, b fixnum.Int[S], op string) (result, ok bool) {
	switch op {
	case "<":
		return a.LessThan(b), true
	case "<=":
		return a.LessOrEqualTo(b), true
	case ">":
		return a.GreaterThan(b), true
	case ">=":
		return a.GreaterOrEqualTo(b), true
	case "==":
		return a.Equal(b), true
	case "!=":
		return !a.Equal(b), true
	}
	return false, false
}

func arith[S fixnum.Storage](a, b fixnum.Int[S], op string) (fixnum.Int[S], error) {
	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*":
		return a.Mul(b), nil
	case "/":
		return a.Quo(b)
	case "%":
		return a.Rem(b)
	case "&":
		return a.And(b), nil
	case "|":
		return a.Or(b), nil
	case "^":
		return a.Xor(b), nil
	case "&^":
		return a.AndNot(b), nil
	case "<<":
		return a.Lsh(b), nil
	case ">>":
		return a.Rsh(b), nil
	}
	return a, errors.Newf("fixcalc: unknown operator %q", op)
}
