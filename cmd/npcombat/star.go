package main

import (
	"github.com/spf13/cobra"

	"npcombat/internal/combat"
	"npcombat/internal/galaxy"
)

type starGroup struct {
	Kind  string          `json:"kind"`
	UID   int             `json:"uid"`
	Name  string          `json:"name"`
	Owner combat.PlayerID `json:"owner"`
	Ships int             `json:"ships"`
	Left  int             `json:"left"`
}

type starResult struct {
	Star       string          `json:"star"`
	Winner     combat.PlayerID `json:"winner"`
	WinnerName string          `json:"winner_name"`
	Groups     []starGroup     `json:"groups"`
}

var starCmd = &cobra.Command{
	Use:   "star",
	Short: "Resolve the fight at a star from a saved universe report",
	RunE: func(cmd *cobra.Command, args []string) error {
		reportPath, _ := cmd.Flags().GetString("report")
		starUID, _ := cmd.Flags().GetInt("star")

		g, err := galaxy.Load(reportPath)
		if err != nil {
			return err
		}
		star, err := g.Star(starUID)
		if err != nil {
			return err
		}
		cs, err := g.Battle(starUID)
		if err != nil {
			return err
		}

		opts := []combat.Option{combat.WithEvents(func(ev combat.Event) {
			log.Debug().Int("turn", ev.Turn).Str("type", ev.Type).Interface("payload", ev.Payload).Msg("battle event")
		})}
		if cmd.Flags().Changed("defender") {
			d, _ := cmd.Flags().GetInt("defender")
			opts = append(opts, combat.WithDefender(combat.PlayerID(d)))
		}
		out, err := combat.FromCombatants(cs, g, opts...)
		if err != nil {
			return err
		}

		res := starResult{Star: star.Name, Winner: out.Winner, WinnerName: g.PlayerName(out.Winner)}
		for _, c := range cs {
			grp := starGroup{Kind: c.Kind().String(), Owner: c.Owner(), Ships: c.Ships(), Left: out.Remaining[c]}
			switch x := c.(type) {
			case *galaxy.Star:
				grp.UID, grp.Name = x.UID, x.Name
			case *galaxy.Fleet:
				grp.UID, grp.Name = x.UID, x.Name
			}
			res.Groups = append(res.Groups, grp)
		}
		log.Info().Str("star", star.Name).Str("winner", res.WinnerName).Msg("battle resolved")
		return writeOutput(combat.MarshalPretty(res))
	},
}

func init() {
	starCmd.Flags().String("report", "", "universe report JSON file")
	starCmd.Flags().Int("star", 0, "star uid")
	starCmd.Flags().Int("defender", 0, "defending player uid (default: owner of the star)")
	_ = starCmd.MarkFlagRequired("report")
	_ = starCmd.MarkFlagRequired("star")
	rootCmd.AddCommand(starCmd)
}
