package cmd

import (
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/upmsp/upmsp/config"
	"github.com/upmsp/upmsp/feedback"
	"github.com/upmsp/upmsp/heuristic"
	"github.com/upmsp/upmsp/ioformat"
	"github.com/upmsp/upmsp/neighborhood"
	"github.com/upmsp/upmsp/omp"
	"github.com/upmsp/upmsp/problem"
	"github.com/upmsp/upmsp/rngsrc"
	"github.com/upmsp/upmsp/solution"
)

var parms = config.Default()

var runCmd = &cobra.Command{
	Use:   "run <input-file> <output-file> <seed>",
	Short: "Solve a stockyard blending and scheduling instance",
	Args:  cobra.ExactArgs(3),
	Run:   runRun,
}

func init() {
	runCmd.Flags().StringVar(&parms.Constructive, "constructive", parms.Constructive, "Route-generation strategy: premodel, postmodel")
	runCmd.Flags().StringVar(&parms.Algorithm, "algorithm", parms.Algorithm, "Heuristic driver: sa, lahc (empty: constructive only)")
	runCmd.Flags().IntVar(&parms.Feedback, "feedback", parms.Feedback, "Number of feedback iterations with the blending model")
	runCmd.Flags().IntVar(&parms.MaxIters, "maxiters", parms.MaxIters, "Maximum heuristic iterations (LAHC: move evaluations; SA: temperature levels)")
	runCmd.Flags().IntVar(&parms.LSize, "lsize", parms.LSize, "LAHC history list size")
	runCmd.Flags().Float64Var(&parms.Alpha, "alpha", parms.Alpha, "SA cooling rate")
	runCmd.Flags().IntVar(&parms.SAMax, "samax", parms.SAMax, "SA proposals evaluated per temperature level")
	runCmd.Flags().Float64Var(&parms.T0, "t0", parms.T0, "SA initial temperature")
}

func runRun(_ *cobra.Command, args []string) {
	setLogLevel()

	inputFile, outputFile, seedArg := args[0], args[1], args[2]
	seed, err := strconv.ParseInt(seedArg, 10, 64)
	if err != nil {
		logrus.Fatalf("invalid seed %q: %v", seedArg, err)
	}
	parms.Seed = seed

	if parms.Constructive != "premodel" && parms.Constructive != "postmodel" {
		logrus.Fatalf("invalid -constructive %q: must be premodel or postmodel", parms.Constructive)
	}
	if parms.Algorithm != "" && parms.Algorithm != "sa" && parms.Algorithm != "lahc" {
		logrus.Fatalf("invalid -algorithm %q: must be sa, lahc, or empty", parms.Algorithm)
	}

	logrus.Infof("loading problem from %s", inputFile)
	p, err := ioformat.ReadProblem(inputFile)
	if err != nil {
		logrus.Fatalf("loading problem: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"stockpiles":   len(p.Stockpiles),
		"engines":      len(p.Engines),
		"inputs":       len(p.Inputs),
		"outputs":      len(p.Outputs),
		"constructive": parms.Constructive,
		"algorithm":    parms.Algorithm,
		"feedback":     parms.Feedback,
		"seed":         parms.Seed,
	}).Info("starting run")

	rng := rngsrc.New(parms.Seed)
	s := solution.New(p)

	mo, err := omp.New(p)
	if err != nil {
		logrus.Fatalf("building blending model: %v", err)
	}

	post, err := feedback.Construct(p, s, mo, rng, parms.Constructive == "premodel", feedback.DefaultSolveBudget)
	if err != nil {
		logrus.Fatalf("initial solve: %v", err)
	}

	var driver feedback.Driver
	if parms.Algorithm != "" {
		driver = newDriver(p, &post.Base, rng)
		driver.Run(s, parms.MaxIters, false)
		if best := driver.Best(); best != nil {
			s = best
		}
	}

	if parms.Feedback > 0 {
		s, _ = feedback.Loop(p, s, mo, driver, rng, parms.Feedback, parms.MaxIters, feedback.DefaultSolveBudget)
	}

	if err := s.SetDeliveries(p); err != nil {
		logrus.Errorf("computing deliveries: %v", err)
	}

	if err := ioformat.WriteSolution(outputFile, p, s); err != nil {
		logrus.Fatalf("writing solution: %v", err)
	}

	logrus.Infof("wrote solution to %s (cost=%.2f)", outputFile, s.Cost)
}

// newDriver builds the configured heuristic with every registered
// neighborhood move registered against it, matching main.py's
// create_neighborhoods: every move variant is always added, regardless of
// which algorithm is selected.
func newDriver(p problem.Problem, rebuild neighborhood.Rebuilder, rng *rngsrc.Source) feedback.Driver {
	var driver feedback.Driver
	switch parms.Algorithm {
	case "sa":
		driver = heuristic.NewSA(parms.Alpha, parms.T0, parms.SAMax, rng)
	case "lahc":
		driver = heuristic.NewLAHC(parms.LSize, rng)
	}

	adder, ok := driver.(interface {
		AddMove(neighborhood.Move)
	})
	if !ok {
		return driver
	}
	for _, name := range neighborhood.Names {
		adder.AddMove(neighborhood.New(name, p, rebuild, rng))
	}
	return driver
}
