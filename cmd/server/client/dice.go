package client

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/handlers/statistics/v1alpha1"
)

var (
	rollMethod     string
	rollTTL        time.Duration
	assignScores   []int
	assignPriority string
)

var rollAbilityScoresCmd = &cobra.Command{
	Use:   "roll [entity-id]",
	Short: "Roll six ability scores for an entity",
	Long: `Generate six ability scores and store them so they can be read back.

  Example: roll char_123 --method 4d6_drop_lowest`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.StatisticsServiceClient.RollAbilityScores,
			&v1alpha1.RollAbilityScoresRequest{
				EntityID:   args[0],
				Method:     rollMethod,
				TTLSeconds: int(rollTTL.Seconds()),
			})
	},
}

var getRollSessionCmd = &cobra.Command{
	Use:   "get-roll-session [entity-id]",
	Short: "Get the stored ability score rolls for an entity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.StatisticsServiceClient.GetRollSession,
			&v1alpha1.RollSessionRequest{EntityID: args[0]})
	},
}

var clearRollSessionCmd = &cobra.Command{
	Use:   "clear-roll-session [entity-id]",
	Short: "Remove the stored ability score rolls for an entity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.StatisticsServiceClient.ClearRollSession,
			&v1alpha1.RollSessionRequest{EntityID: args[0]})
	},
}

var assignScoresCmd = &cobra.Command{
	Use:   "assign-scores",
	Short: "Place six scores onto abilities, highest first by priority",
	Long: `Example: assign-scores --scores 15,14,13,12,10,8 --priority dex,con`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var priority []string
		if assignPriority != "" {
			priority = strings.Split(assignPriority, ",")
		}
		return invoke(cmd, v1alpha1.StatisticsServiceClient.AssignScores,
			&v1alpha1.AssignScoresRequest{
				Scores:   assignScores,
				Priority: priority,
			})
	},
}

func init() {
	rollAbilityScoresCmd.Flags().StringVar(&rollMethod, "method", "", "4d6_drop_lowest, 3d6 or standard_array")
	rollAbilityScoresCmd.Flags().DurationVar(&rollTTL, "ttl", 0, "how long the rolls are kept")

	assignScoresCmd.Flags().IntSliceVar(&assignScores, "scores", nil, "six comma separated scores")
	assignScoresCmd.Flags().StringVar(&assignPriority, "priority", "", "comma separated abilities to favor")
}
