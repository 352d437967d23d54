// Command kolmogorov dispatches the four task drivers the reference
// crate ships as separate binaries (examples/print_all.rs, search_pow.rs,
// metropolis.rs, pure_iterative.rs) as subcommands of one Go binary,
// following cmd/funxy's single-binary convention rather than one binary
// per scenario.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/kolmogorov-synth/kolmogorov/internal/context"
	"github.com/kolmogorov-synth/kolmogorov/internal/lang"
	"github.com/kolmogorov-synth/kolmogorov/internal/langconf"
	"github.com/kolmogorov-synth/kolmogorov/internal/langs/condpoly"
	"github.com/kolmogorov-synth/kolmogorov/internal/langs/opaque"
	"github.com/kolmogorov-synth/kolmogorov/internal/langs/polynomial"
	"github.com/kolmogorov-synth/kolmogorov/internal/oeis"
	"github.com/kolmogorov-synth/kolmogorov/internal/reportlog"
	"github.com/kolmogorov-synth/kolmogorov/internal/search"
	"github.com/kolmogorov-synth/kolmogorov/internal/synth"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
	"github.com/kolmogorov-synth/kolmogorov/internal/termlit"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: kolmogorov <enumerate|search|metro|iterative> [flags]")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "enumerate":
		err = runEnumerate(os.Args[2:])
	case "search":
		err = runSearch(os.Args[2:])
	case "metro":
		err = runMetro(os.Args[2:])
	case "iterative":
		err = runIterative(os.Args[2:])
	case "-help", "--help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

// resolveLang is the registry of example languages this binary ships
// with (spec SPEC_FULL.md §4, "Example languages").
func resolveLang(name string) (lang.Language, error) {
	switch name {
	case "polynomial":
		return polynomial.New(), nil
	case "condpoly":
		return condpoly.New(), nil
	case "opaque":
		return opaque.New(), nil
	default:
		return nil, fmt.Errorf("unknown language %q (want polynomial, condpoly, or opaque)", name)
	}
}

// progressWriter decides, per go-isatty's terminal check (mirroring
// internal/evaluator/builtins_term.go's own decision), whether progress
// lines should overwrite in place (`\r`) or scroll as plain
// newline-delimited text.
func progressWriter() func(string) {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return func(s string) { fmt.Fprintf(os.Stdout, "\r%s", s) }
	}
	return func(s string) { fmt.Fprintln(os.Stdout, s) }
}

func runEnumerate(args []string) error {
	fs := flag.NewFlagSet("enumerate", flag.ExitOnError)
	langName := fs.String("lang", "polynomial", "example language")
	typeSrc := fs.String("type", "N => N", "target type literal")
	size := fs.Int("size", 5, "exact term size")
	limit := fs.Int("limit", 0, "stop after this many terms (0 = unbounded)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	l, err := resolveLang(*langName)
	if err != nil {
		return err
	}
	ty, err := termlit.ParseType(*typeSrc)
	if err != nil {
		return err
	}

	s := search.NewContextSearch(l, l.Context(), ty, *size)
	n := 0
	for {
		t, an, ok := s.Next()
		if !ok {
			break
		}
		fmt.Printf("%s (≈ %s)\n", termlit.Print(t), describeAnalysis(an))
		n++
		if *limit > 0 && n >= *limit {
			break
		}
	}
	fmt.Printf("%d term(s) of type %s, size %d\n", n, termlit.PrintType(ty), *size)
	return nil
}

func describeAnalysis(an lang.Analysis) string {
	switch an.Kind {
	case lang.Canonical:
		return "canonical"
	case lang.Unique:
		return "unique"
	default:
		return "malformed"
	}
}

func runSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	langName := fs.String("lang", "polynomial", "example language")
	typeSrc := fs.String("type", "N => N => N", "target type literal")
	maxSize := fs.Int("max-size", 9, "largest size to try before giving up")
	configPath := fs.String("config", "", "YAML file with an examples table")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		return fmt.Errorf("search: -config is required")
	}

	l, err := resolveLang(*langName)
	if err != nil {
		return err
	}
	ty, err := termlit.ParseType(*typeSrc)
	if err != nil {
		return err
	}
	cfg, err := langconf.Load(*configPath)
	if err != nil {
		return err
	}
	examples := cfg.SimpleMapExamples()

	logger := reportlog.New(os.Stdout)
	for size := 1; size <= *maxSize; size++ {
		s := search.NewContextSearch(l, l.Context(), ty, size)
		for {
			t, _, ok := s.Next()
			if !ok {
				break
			}
			if matchesAll(l.Context(), t, examples) {
				logger.Solved("search", termlit.Print(t), describeAnalysis(lang.Analyze(l, t, ty, nil)))
				return nil
			}
		}
	}
	logger.NotFound("search", *maxSize)
	return nil
}

// loadOEISSequence pulls n leading terms of id, consulting a local sqlite
// cache at cachePath when given so repeat runs against the same sequence
// don't re-fetch its b-file (spec SPEC_FULL.md §3, "OEIS loader").
func loadOEISSequence(id, cachePath string, n int) ([]term.Value, error) {
	loader := &oeis.Loader{}
	if cachePath != "" {
		c, err := oeis.Open(cachePath)
		if err != nil {
			return nil, err
		}
		defer c.Close()
		loader.Cache = c
	}
	terms, err := loader.Load(id, n)
	if err != nil {
		return nil, fmt.Errorf("iterative: loading %s: %w", id, err)
	}
	out := make([]term.Value, len(terms))
	for i, v := range terms {
		out[i] = term.IntValue(int32(v))
	}
	return out, nil
}

func matchesAll(ctx *context.Context, t term.Term, examples []synth.Example) bool {
	for _, ex := range examples {
		fn := t
		for _, a := range ex.Args {
			fn = term.TApp{Fun: fn, Arg: term.TVal{Val: a}}
		}
		got, ok := term.LeafVal(context.Evaluate(ctx, fn))
		if !ok || !got.Equal(ex.Want) {
			return false
		}
	}
	return true
}

func runMetro(args []string) error {
	fs := flag.NewFlagSet("metro", flag.ExitOnError)
	langName := fs.String("lang", "opaque", "example language")
	typeSrc := fs.String("type", "N => N", "target type literal")
	seedSrc := fs.String("seed", "n -> n", "seed term literal")
	configPath := fs.String("config", "", "YAML file with iterations/bias/examples")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		return fmt.Errorf("metro: -config is required")
	}

	l, err := resolveLang(*langName)
	if err != nil {
		return err
	}
	ty, err := termlit.ParseType(*typeSrc)
	if err != nil {
		return err
	}
	seed, err := termlit.ParseTerm(*seedSrc, termlit.Holes{})
	if err != nil {
		return err
	}
	cfg, err := langconf.Load(*configPath)
	if err != nil {
		return err
	}
	params, err := cfg.Parameters()
	if err != nil {
		return err
	}
	examples := cfg.SimpleMapExamples()

	print := progressWriter()
	logger := reportlog.New(os.Stdout)
	params.PrintFreq = cfg.PrintFreq
	params.OnProgress = func(iter int, bestScore float64, best term.Term) {
		print(fmt.Sprintf("metro: iteration %d, best score %.4f, best %s", iter, bestScore, termlit.Print(best)))
	}
	rng := rand.New(rand.NewSource(1))

	result := synth.SimpleMap(l, l.Context(), ty, examples, seed, rng, params)
	if result.Solved {
		logger.Solved("metro", termlit.Print(result.Best), "score=solved")
	} else {
		logger.NotFound("metro", result.Iters)
	}
	return nil
}

func runIterative(args []string) error {
	fs := flag.NewFlagSet("iterative", flag.ExitOnError)
	langName := fs.String("lang", "polynomial", "example language")
	typeSrc := fs.String("type", "N => N", "step function type (Elem -> Elem)")
	seedSrc := fs.String("seed", "prev -> prev", "seed term literal")
	configPath := fs.String("config", "", "YAML file with a sequence's examples")
	oeisID := fs.String("oeis", "", "OEIS sequence id (e.g. A000079) to pull examples from instead of -config's table")
	oeisCache := fs.String("oeis-cache", "", "sqlite cache path for -oeis lookups (default: no cache, always fetch)")
	oeisTerms := fs.Int("oeis-terms", 8, "number of leading terms to pull from -oeis")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" && *oeisID == "" {
		return fmt.Errorf("iterative: one of -config or -oeis is required")
	}

	l, err := resolveLang(*langName)
	if err != nil {
		return err
	}
	ty, err := termlit.ParseType(*typeSrc)
	if err != nil {
		return err
	}
	seed, err := termlit.ParseTerm(*seedSrc, termlit.Holes{})
	if err != nil {
		return err
	}

	var params synth.Parameters
	var seq []term.Value
	if *configPath != "" {
		cfg, err := langconf.Load(*configPath)
		if err != nil {
			return err
		}
		params, err = cfg.Parameters()
		if err != nil {
			return err
		}
		seq = cfg.Sequence()
	} else {
		params = synth.Parameters{Iterations: 75000, ScoreFactor: 0.5, Bias: synth.Flat{}, PrintFreq: 100}
	}
	if *oeisID != "" {
		seq, err = loadOEISSequence(*oeisID, *oeisCache, *oeisTerms)
		if err != nil {
			return err
		}
	}
	rng := rand.New(rand.NewSource(1))

	print := progressWriter()
	params.OnProgress = func(iter int, bestScore float64, best term.Term) {
		print(fmt.Sprintf("iterative: iteration %d, best score %.4f, best %s", iter, bestScore, termlit.Print(best)))
	}

	logger := reportlog.New(os.Stdout)
	result := synth.Iterative(l, l.Context(), ty, seq, seed, rng, params)
	if result.Solved {
		logger.Solved("iterative", termlit.Print(result.Best), "score=solved")
	} else {
		logger.NotFound("iterative", result.Iters)
	}
	return nil
}
