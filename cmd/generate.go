package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/upmsp/upmsp/ioformat"
	"github.com/upmsp/upmsp/rngsrc"
)

var genParams = ioformat.DefaultGenerateParams()
var genSeed int64
var genName string

var generateCmd = &cobra.Command{
	Use:   "generate <output-file>",
	Short: "Emit a random problem instance, grounded on the original instance generator",
	Args:  cobra.ExactArgs(1),
	Run:   runGenerate,
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed")
	generateCmd.Flags().StringVar(&genName, "name", "", "Instance name (default: random Instance_R<n>)")
	generateCmd.Flags().IntVar(&genParams.Stockpiles, "stockpiles", genParams.Stockpiles, "Number of stockpiles")
	generateCmd.Flags().Float64Var(&genParams.Capacity, "capacity", genParams.Capacity, "Nominal stockpile capacity")
	generateCmd.Flags().IntVar(&genParams.Outputs, "outputs", genParams.Outputs, "Number of output requests")
	generateCmd.Flags().Float64Var(&genParams.Weight, "weight", genParams.Weight, "Nominal demanded mass per output")
	generateCmd.Flags().IntVar(&genParams.Inputs, "inputs", genParams.Inputs, "Number of inputs")
	generateCmd.Flags().IntVar(&genParams.Engines, "engines", genParams.Engines, "Number of engines")
	generateCmd.Flags().Float64Var(&genParams.Variant, "variant", genParams.Variant, "Relative variance applied to nominal values")
}

func runGenerate(_ *cobra.Command, args []string) {
	setLogLevel()

	genParams.Name = genName
	rng := rngsrc.New(genSeed)
	p := ioformat.Generate(genParams, rng)

	if err := ioformat.WriteProblem(args[0], p); err != nil {
		logrus.Fatalf("writing generated instance: %v", err)
	}
	logrus.Infof("wrote generated instance %q to %s", p.Info.Name, args[0])
}
