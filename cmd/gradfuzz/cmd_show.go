package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gradfuzz/expr"
	"github.com/katalvlaran/gradfuzz/gen"
	"github.com/katalvlaran/gradfuzz/groundtruth"
)

var showEval bool

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Decode one input into its expression without fuzzing it",
	Long: `Decodes a byte stream the way the harness would: input values from
the front, expression tree from the remainder. Prints both renderings
and, with --eval, the ground-truth value and gradient. Useful for
triaging minimized artifacts by eye.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showEval, "eval", false, "also evaluate via the ground-truth backend")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	fc, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	hcfg, err := fc.toHarness()
	if err != nil {
		return err
	}
	gcfg := hcfg.Generator

	if len(data) < gcfg.MaxVariables*8 {
		return fmt.Errorf("input too short: %d bytes, need %d for values", len(data), gcfg.MaxVariables*8)
	}

	inputs := make([]float64, gcfg.MaxVariables)
	for i := range inputs {
		inputs[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}
	tree := data[gcfg.MaxVariables*8:]

	e, err := gen.Generate(tree, gcfg)
	if errors.Is(err, gen.ErrInsufficientEntropy) {
		fmt.Println("stream exhausted mid-tree; the harness would skip this input")

		return nil
	}
	if err != nil {
		return err
	}

	used, _ := gen.Consumed(tree, gcfg)

	fmt.Printf("inputs    %v\n", inputs)
	fmt.Printf("expr      %s\n", expr.Infix(e))
	fmt.Printf("sexpr     %s\n", expr.SExpr(e))
	fmt.Printf("depth     %d\n", e.Depth())
	fmt.Printf("variables %v\n", expr.VarIndices(e))
	fmt.Printf("consumed  %d of %d tree bytes\n", used, len(tree))

	if !showEval {
		return nil
	}

	res, err := groundtruth.New().Derive(e, inputs[:expr.NumInputs(e)])
	if err != nil {
		return err
	}
	fmt.Printf("value     %v\n", res.Value)
	fmt.Printf("gradient  %v\n", res.Gradient)

	return nil
}
