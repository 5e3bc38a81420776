package client

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/handlers/statistics/v1alpha1"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/pkg/charfile"
)

var skillBonus int

var computeCmd = &cobra.Command{
	Use:   "compute [character-file]",
	Short: "Compute statistics for an unsaved character file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := charfile.Read(args[0])
		if err != nil {
			return err
		}
		return invoke(cmd, v1alpha1.StatisticsServiceClient.ComputeStatistics,
			&v1alpha1.CharacterRequest{Character: record})
	},
}

var getCharacterCmd = &cobra.Command{
	Use:   "get [character-id]",
	Short: "Get a stored character with its statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.StatisticsServiceClient.GetCharacterStatistics,
			&v1alpha1.CharacterIDRequest{CharacterID: args[0]})
	},
}

var listCharactersCmd = &cobra.Command{
	Use:   "list [player-id]",
	Short: "List a player's characters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.StatisticsServiceClient.ListCharacters,
			&v1alpha1.ListCharactersRequest{PlayerID: args[0]})
	},
}

var saveCharacterCmd = &cobra.Command{
	Use:   "save [character-file]",
	Short: "Save a character file; a record without an id is created",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := charfile.Read(args[0])
		if err != nil {
			return err
		}
		return invoke(cmd, v1alpha1.StatisticsServiceClient.SaveCharacter,
			&v1alpha1.CharacterRequest{Character: record})
	},
}

var deleteCharacterCmd = &cobra.Command{
	Use:   "delete [character-id]",
	Short: "Delete a stored character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.StatisticsServiceClient.DeleteCharacter,
			&v1alpha1.CharacterIDRequest{CharacterID: args[0]})
	},
}

var updateSkillCmd = &cobra.Command{
	Use:   "skill [character-id] [skill] [toggle_proficiency|toggle_expertise|set_bonus]",
	Short: "Change a skill's proficiency or flat bonus",
	Long: `Apply one skill transition and print the recomputed statistics.

  Example: skill char_123 stealth toggle_expertise
  Example: skill char_123 arcana set_bonus --bonus 2`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.StatisticsServiceClient.UpdateSkillProficiency,
			&v1alpha1.UpdateSkillProficiencyRequest{
				CharacterID: args[0],
				Skill:       args[1],
				Action:      args[2],
				Bonus:       skillBonus,
			})
	},
}

var hitPointsCmd = &cobra.Command{
	Use:   "hp [character-id] [damage|heal|temporary] [amount]",
	Short: "Apply damage, healing or temporary hit points",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[2])
		if err != nil {
			return err
		}
		return invoke(cmd, v1alpha1.StatisticsServiceClient.ApplyHitPointChange,
			&v1alpha1.ApplyHitPointChangeRequest{
				CharacterID: args[0],
				Kind:        args[1],
				Amount:      amount,
			})
	},
}

func init() {
	updateSkillCmd.Flags().IntVar(&skillBonus, "bonus", 0, "flat bonus for set_bonus")
}
