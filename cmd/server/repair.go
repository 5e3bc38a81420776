package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/engine"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/errors"
	characterrepo "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/repositories/character"
)

var repairApply bool

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Find stored characters that need normalizing",
	Long: `Scan every stored character. Records whose stored form differs from the
normalized form (bad ability scores, stale hit points, mixed-case ids) are
rewritten, and records that no longer decode are deleted.

Without --apply the command only reports what it would change.`,
	Args: cobra.NoArgs,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().BoolVar(&repairApply, "apply", false, "write the repairs instead of only reporting them")
}

type repairReport struct {
	Checked   int
	Rewritten []string
	Corrupt   []string
}

func runRepair(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	redisClient, err := connectRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	catalogs, err := loadCatalogs(ctx, cfg.Catalog)
	if err != nil {
		return err
	}

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create character repository: %w", err)
	}

	report, err := repairCharacters(ctx, repo, catalogs, repairApply)
	if err != nil {
		return err
	}

	printRepairReport(cmd.OutOrStdout(), report, repairApply)
	return nil
}

// repairCharacters normalizes every stored record and rewrites the ones that
// drifted. Corrupt records are deleted. Nothing is written unless apply is set.
func repairCharacters(
	ctx context.Context,
	repo characterrepo.Repository,
	catalogs engine.Catalogs,
	apply bool,
) (*repairReport, error) {
	listed, err := repo.ListIDs(ctx, characterrepo.ListIDsInput{})
	if err != nil {
		return nil, err
	}

	report := &repairReport{}
	for _, id := range listed.IDs {
		report.Checked++

		got, err := repo.Get(ctx, characterrepo.GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			if !errors.IsDataLoss(err) {
				return nil, errors.Wrapf(err, "failed to get character %s", id)
			}
			report.Corrupt = append(report.Corrupt, id)
			if apply {
				if _, err := repo.Delete(ctx, characterrepo.DeleteInput{ID: id}); err != nil {
					return nil, errors.Wrapf(err, "failed to delete character %s", id)
				}
				slog.InfoContext(ctx, "deleted corrupt character", "character_id", id)
			}
			continue
		}

		repaired := engine.Normalize(got.Record)
		repaired.HitPoints = engine.Compute(repaired, catalogs).HitPoints

		drifted, err := recordDrifted(got.Record, repaired)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compare character %s", id)
		}
		if !drifted {
			continue
		}

		report.Rewritten = append(report.Rewritten, id)
		if apply {
			if _, err := repo.Update(ctx, characterrepo.UpdateInput{Character: repaired}); err != nil {
				return nil, errors.Wrapf(err, "failed to rewrite character %s", id)
			}
			slog.InfoContext(ctx, "rewrote character", "character_id", id)
		}
	}

	return report, nil
}

// recordDrifted compares the stored record with the repaired character in
// their canonical JSON form. Timestamps are ignored.
func recordDrifted(stored *dnd5e.PartialCharacter, repaired *dnd5e.Character) (bool, error) {
	canonical := func(p *dnd5e.PartialCharacter) ([]byte, error) {
		c := *p
		c.CreatedAt, c.UpdatedAt = 0, 0
		return json.Marshal(&c)
	}

	before, err := canonical(stored)
	if err != nil {
		return false, err
	}
	after, err := canonical(repaired.ToPartial())
	if err != nil {
		return false, err
	}
	return !bytes.Equal(before, after), nil
}

func printRepairReport(w io.Writer, report *repairReport, applied bool) {
	verb, deleteVerb := "would rewrite", "would delete"
	if applied {
		verb, deleteVerb = "rewrote", "deleted"
	}

	_, _ = fmt.Fprintf(w, "Checked %d characters\n", report.Checked)
	if len(report.Rewritten) == 0 && len(report.Corrupt) == 0 {
		_, _ = fmt.Fprintln(w, "Nothing to repair")
		return
	}
	for _, id := range report.Rewritten {
		_, _ = fmt.Fprintf(w, "  %s %s\n", verb, id)
	}
	for _, id := range report.Corrupt {
		_, _ = fmt.Fprintf(w, "  %s %s (record does not decode)\n", deleteVerb, id)
	}
	if !applied {
		_, _ = fmt.Fprintln(w, "Run again with --apply to write these changes")
	}
}
