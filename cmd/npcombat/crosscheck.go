package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"npcombat/internal/combat"
	"npcombat/internal/util"
)

var crosscheckCmd = &cobra.Command{
	Use:   "crosscheck",
	Short: "Compare the closed-form resolver with the simulation on random duels",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("n")
		seed, _ := cmd.Flags().GetInt64("seed")
		maxShips, _ := cmd.Flags().GetInt("max-ships")
		maxWeapons, _ := cmd.Flags().GetInt("max-weapons")
		if n < 1 || maxShips < 0 || maxWeapons < 1 {
			return fmt.Errorf("need n >= 1, max-ships >= 0 and max-weapons >= 1")
		}

		workers := min(settings.Workers, n)
		total := combat.CrossCheckReport{}
		var mu sync.Mutex
		wg := sync.WaitGroup{}
		for w := 0; w < workers; w++ {
			share := n / workers
			if w < n%workers {
				share++
			}
			wg.Add(1)
			go func(workerID, share int) {
				defer wg.Done()
				rep := combat.CrossCheck(util.Derive(seed, workerID, 0), share, maxShips, maxWeapons)
				mu.Lock()
				total.Runs += rep.Runs
				total.Mismatches = append(total.Mismatches, rep.Mismatches...)
				mu.Unlock()
			}(w, share)
		}
		wg.Wait()

		ev := log.Info()
		if len(total.Mismatches) > 0 {
			ev = log.Warn()
		}
		ev.Int("runs", total.Runs).Int("mismatches", len(total.Mismatches)).Msg("cross-check finished")
		if err := writeOutput(combat.MarshalPretty(total)); err != nil {
			return err
		}
		if len(total.Mismatches) > 0 {
			return fmt.Errorf("%d of %d duels disagree", len(total.Mismatches), total.Runs)
		}
		return nil
	},
}

func init() {
	crosscheckCmd.Flags().Int("n", 10000, "number of duels")
	crosscheckCmd.Flags().Int64("seed", 12345, "seed")
	crosscheckCmd.Flags().Int("max-ships", 500, "largest group size")
	crosscheckCmd.Flags().Int("max-weapons", 10, "highest weapon level")
	rootCmd.AddCommand(crosscheckCmd)
}
