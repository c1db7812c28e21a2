// Command schedsim drives the multilevel feedback scheduler against a
// small set of canned workloads, for demonstration and manual
// exploration outside the test suite.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/go-foundations/mlfq/config"
	"github.com/go-foundations/mlfq/scheduler"
	"github.com/go-foundations/mlfq/thread"
	"github.com/go-foundations/mlfq/trace"
)

var (
	version    = "dev"
	cfgFile    string
	realtime   bool
	scenario   string
	totalTicks int
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "schedsim",
		Short:   "Multilevel feedback ready-queue scheduler simulator",
		Version: version,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a canned workload against the scheduler and print its trace",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&cfgFile, "config", "", "optional YAML tunables overlay")
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "pace ticks at one per 100ms instead of running to completion immediately")
	runCmd.Flags().StringVar(&scenario, "scenario", "mixed", "workload to run: mixed, starvation, bursty")
	runCmd.Flags().IntVar(&totalTicks, "ticks", 5000, "maximum scheduling rounds (one timer quantum each) before giving up")

	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	tunables := scheduler.DefaultTunables()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		tunables = loaded
	}

	ticks := &scheduler.ManualTickSource{}
	interrupts := scheduler.NewManualInterruptController()
	sink := trace.NewZerologSink(os.Stdout)

	sched := scheduler.New(scheduler.Config{
		Tunables:   tunables,
		Sink:       sink,
		Interrupts: interrupts,
		Ticks:      ticks,
	})

	threads := workload(scenario)
	for _, t := range threads {
		sched.ReadyToRun(t)
	}

	var limiter *rate.Limiter
	if realtime {
		limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 1)
	}

	remaining := len(threads)
	for tick := 0; tick < totalTicks && remaining > 0; tick++ {
		if limiter != nil {
			_ = limiter.Wait(cmd.Context())
		}

		next, ok := sched.FindNextToRun()
		if !ok {
			ticks.Advance(uint64(tunables.TimerTicks))
			continue
		}

		old := sched.Current()
		finishing := old != nil && old.Status == thread.Terminated

		sched.Run(next, finishing)
		next.TotalExe += tunables.TimerTicks
		ticks.Advance(uint64(tunables.TimerTicks))

		sched.Tick()

		if next.Remain() <= 0 {
			next.Status = thread.Terminated
			remaining--
			continue
		}

		next.Status = thread.Ready
		sched.ReadyToRun(next)
	}

	fmt.Println(sched.Print())
	stats := sched.Stats()
	fmt.Printf("admissions=%d dispatches=%d promotions=%d preemptions=%v\n",
		stats.Admissions, stats.Dispatches, stats.Promotions, stats.PreemptionByTier)

	return nil
}

func workload(name string) []*thread.Descriptor {
	switch name {
	case "starvation":
		return []*thread.Descriptor{
			thread.NewDescriptor(1, "hog-a", 110, 10000),
			thread.NewDescriptor(2, "hog-b", 105, 10000),
			thread.NewDescriptor(3, "background", 10, 200),
		}
	case "bursty":
		return []*thread.Descriptor{
			thread.NewDescriptor(1, "spike", 149, 50),
			thread.NewDescriptor(2, "spike2", 149, 30),
			thread.NewDescriptor(3, "steady", 70, 500),
		}
	default:
		return []*thread.Descriptor{
			thread.NewDescriptor(1, "interactive", 130, 80),
			thread.NewDescriptor(2, "service", 70, 400),
			thread.NewDescriptor(3, "batch", 20, 1200),
		}
	}
}
