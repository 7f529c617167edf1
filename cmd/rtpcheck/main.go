// Command rtpcheck builds pools for a paytable and verifies that the RTP
// implied by the pools matches the closed-form figure. It exits non-zero on
// divergence so it can gate paytable changes in CI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/slotforge/internal/catalog"
	"github.com/osse101/slotforge/internal/config"
	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/engine"
	"github.com/osse101/slotforge/internal/logger"
	"github.com/osse101/slotforge/internal/rtp"
	"github.com/osse101/slotforge/internal/simulation"
	"github.com/osse101/slotforge/internal/utils"
)

// Exit codes
const (
	exitOK         = 0
	exitDivergence = 1
	exitUsage      = 2
)

const defaultSeed = 20240601

// checkReport is the JSON document written by -out and read by -baseline.
type checkReport struct {
	Paytable    string               `json:"paytable"`
	Seed        uint64               `json:"seed"`
	Target      int                  `json:"target"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Theoretical domain.RTPBreakdown  `json:"theoretical"`
	Actual      domain.RTPBreakdown  `json:"actual"`
	Comparison  rtp.Comparison       `json:"comparison"`
	Warnings    []domain.PoolWarning `json:"warnings,omitempty"`
	Simulation  *simulation.Summary  `json:"simulation,omitempty"`
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rtpcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		paytablePath = fs.String("paytable", config.ConfigPathPaytable, "paytable JSON file")
		target       = fs.Int("target", config.DefaultPoolTargetCount, "boards per outcome pool")
		seed         = fs.Uint64("seed", defaultSeed, "RNG seed, 0 for a fresh one")
		tolerance    = fs.Float64("tolerance", rtp.DefaultTolerance, "allowed |actual - theoretical| in percentage points")
		spins        = fs.Int("spins", 0, "simulated spins to run after the check")
		workers      = fs.Int("workers", config.DefaultBuildWorkers, "parallel bucket builders")
		outPath      = fs.String("out", "", "write the report as JSON")
		baseline     = fs.String("baseline", "", "earlier report to diff theoretical RTP against")
		lang         = fs.String("lang", "en", "number formatting locale")
		strict       = fs.Bool("strict", false, "fail on hard pool shortfalls too")
		verbose      = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger.InitLoggerWithWriter(logger.NewConfig(level, "text", "rtpcheck", "dev", "cli", false), stderr)

	tag, err := language.Parse(*lang)
	if err != nil {
		fmt.Fprintf(stderr, "invalid -lang %q: %v\n", *lang, err)
		return exitUsage
	}
	p := message.NewPrinter(tag)

	pt, err := catalog.NewLoader().Load(*paytablePath)
	if err != nil {
		fmt.Fprintf(stderr, "load paytable: %v\n", err)
		return exitUsage
	}

	eng, err := engine.New(pt, engine.Options{Seed: *seed, Workers: *workers, Tolerance: *tolerance})
	if err != nil {
		fmt.Fprintf(stderr, "create engine: %v\n", err)
		return exitUsage
	}
	defer eng.Close()

	res, err := eng.BuildPools(ctx, *target, nil)
	if err != nil {
		fmt.Fprintf(stderr, "build pools: %v\n", err)
		return exitUsage
	}
	actual, err := eng.Actual(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "actual rtp: %v\n", err)
		return exitUsage
	}
	cmp, err := eng.Compare(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "compare: %v\n", err)
		return exitUsage
	}

	report := checkReport{
		Paytable:    *paytablePath,
		Seed:        res.Seed,
		Target:      *target,
		GeneratedAt: time.Now().UTC(),
		Theoretical: eng.Theoretical(),
		Actual:      actual,
		Comparison:  cmp,
		Warnings:    res.Warnings,
	}

	if *spins > 0 {
		sim, err := eng.Simulate(ctx, simulation.Options{Spins: *spins, BaseBet: decimal.NewFromInt(1)})
		if err != nil {
			fmt.Fprintf(stderr, "simulate: %v\n", err)
			return exitUsage
		}
		report.Simulation = &sim.Summary
	}

	printReport(p, stdout, report)
	if report.Simulation != nil {
		fmt.Fprint(stdout, report.Simulation.Format(tag))
	}

	if *baseline != "" {
		var prev checkReport
		if err := utils.LoadJSON(*baseline, &prev); err != nil {
			fmt.Fprintf(stderr, "baseline: %v\n", err)
			return exitUsage
		}
		drift := utils.RoundTo(report.Theoretical.TotalRTP-prev.Theoretical.TotalRTP, 4)
		p.Fprintf(stdout, "theoretical drift vs baseline: %+.4f pp\n", drift)
	}

	if *outPath != "" {
		if err := utils.SaveJSON(*outPath, report); err != nil {
			fmt.Fprintf(stderr, "write report: %v\n", err)
			return exitUsage
		}
	}

	if !cmp.WithinTolerance {
		p.Fprintf(stdout, "FAIL: actual RTP differs from theoretical by %.4f pp (tolerance %.4f)\n",
			cmp.Difference, cmp.Tolerance)
		return exitDivergence
	}
	if *strict && hasHardShortfall(res.Warnings) {
		fmt.Fprintln(stdout, "FAIL: pools have hard shortfalls")
		return exitDivergence
	}
	fmt.Fprintln(stdout, "OK")
	return exitOK
}

func printReport(p *message.Printer, w io.Writer, r checkReport) {
	p.Fprintf(w, "paytable: %s (seed %d, %d boards per outcome)\n", r.Paytable, r.Seed, r.Target)
	p.Fprintf(w, "theoretical RTP: %.3f%% (line %.3f%%, scatter %.3f%%)\n",
		r.Theoretical.TotalRTP, r.Theoretical.LineRTP, r.Theoretical.ScatterRTP)
	p.Fprintf(w, "actual RTP:      %.3f%% (line %.3f%%, scatter %.3f%%)\n",
		r.Actual.TotalRTP, r.Actual.LineRTP, r.Actual.ScatterRTP)
	for _, b := range r.Actual.Buckets {
		status := ""
		if b.Missing {
			status = " MISSING"
		}
		p.Fprintf(w, "  %-12s p=%.4f avg=%.3f boards=%d contrib=%.3f%%%s\n",
			b.OutcomeID, b.Probability, b.AvgScore, b.Boards, b.Contribution, status)
	}
	for _, warn := range r.Warnings {
		p.Fprintf(w, "warning [%s] %s: %d/%d boards\n", warn.Severity, warn.OutcomeID, warn.Generated, warn.Target)
	}
}

func hasHardShortfall(warnings []domain.PoolWarning) bool {
	for _, w := range warnings {
		if w.Severity == domain.WarningHard {
			return true
		}
	}
	return false
}
