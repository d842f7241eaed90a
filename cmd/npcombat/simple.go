package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"npcombat/internal/combat"
)

var simpleCmd = &cobra.Command{
	Use:   "simple DEF_WEAPONS DEF_SHIPS ATT_WEAPONS ATT_SHIPS",
	Short: "Closed-form result of a fight between two single groups",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := make([]int, len(args))
		for i, a := range args {
			x, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("argument %d: %w", i+1, err)
			}
			n[i] = x
		}
		won, left, err := combat.Simple(
			combat.Side{Weapons: n[0], Ships: n[1]},
			combat.Side{Weapons: n[2], Ships: n[3]},
		)
		if err != nil {
			return err
		}
		return writeOutput(combat.MarshalPretty(combat.Estimate{DefenderWon: won, Remaining: left}))
	},
}

func init() {
	rootCmd.AddCommand(simpleCmd)
}
