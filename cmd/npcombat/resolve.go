package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"npcombat/internal/combat"
	"npcombat/internal/config"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [scenario.yaml|dir]...",
	Short: "Resolve battles described in scenario files",
	Long: `Loads each scenario file (or every .yaml file in a directory) and resolves
it. Several scenarios are resolved in parallel by --workers goroutines.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var scenarios []*config.Scenario
		for _, a := range args {
			st, err := os.Stat(a)
			if err != nil {
				return err
			}
			if st.IsDir() {
				scs, err := config.LoadScenarios(a)
				if err != nil {
					return err
				}
				scenarios = append(scenarios, scs...)
				continue
			}
			sc, err := config.LoadScenario(a)
			if err != nil {
				return err
			}
			scenarios = append(scenarios, sc)
		}

		results, err := runScenarios(scenarios, settings.Workers, settings.Record)
		if err != nil {
			return err
		}
		if len(results) == 1 {
			return writeOutput(combat.MarshalPretty(results[0]))
		}
		return writeOutput(combat.MarshalPretty(results))
	},
}

func init() {
	resolveCmd.Flags().Int("workers", 8, "parallel scenarios")
	resolveCmd.Flags().Bool("record", false, "include the full battle log")
	_ = v.BindPFlag("workers", resolveCmd.Flags().Lookup("workers"))
	_ = v.BindPFlag("record", resolveCmd.Flags().Lookup("record"))
	rootCmd.AddCommand(resolveCmd)
}

// runScenarios resolves every scenario, keeping input order in the result.
func runScenarios(scs []*config.Scenario, workers int, record bool) ([]combat.ScenarioResult, error) {
	results := make([]combat.ScenarioResult, len(scs))
	errs := make([]error, len(scs))

	wg := sync.WaitGroup{}
	jobs := make(chan int, len(scs))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := combat.RunScenario(scs[i], record)
				results[i], errs[i] = res, err
				if err == nil {
					log.Info().Str("scenario", res.Name).Str("winner", res.WinnerName).
						Int("ships_before", res.ShipsBefore).Int("ships_after", res.ShipsAfter).Msg("battle resolved")
				}
			}
		}()
	}
	for i := range scs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
	}
	return results, nil
}
