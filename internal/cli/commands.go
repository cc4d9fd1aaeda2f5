package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Recompute the match reports of one job, or of every job with --all",
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobID, _ := cmd.Flags().GetUint("job")
		all, _ := cmd.Flags().GetBool("all")
		if all == (jobID != 0) {
			return fmt.Errorf("exactly one of --job or --all is required")
		}
		rawOwner, _ := cmd.Flags().GetString("owner")

		var owner *uuid.UUID
		if rawOwner != "" {
			if all {
				return fmt.Errorf("--owner cannot be combined with --all")
			}
			id, err := uuid.Parse(rawOwner)
			if err != nil {
				return fmt.Errorf("invalid --owner: %w", err)
			}
			owner = &id
		}

		d, err := depsFactory(cmd.Context())
		if err != nil {
			return err
		}
		if all {
			result, err := d.matches.RebuildAllJobs(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		}
		result, err := d.matches.BuildReportsForJob(cmd.Context(), jobID, owner)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank every job against a resume",
	RunE: func(cmd *cobra.Command, _ []string) error {
		resumeID, _ := cmd.Flags().GetUint("resume")
		owner, err := ownerFlag(cmd)
		if err != nil {
			return err
		}

		d, err := depsFactory(cmd.Context())
		if err != nil {
			return err
		}
		ranked, err := d.ranking.RankJobsForResume(cmd.Context(), resumeID, owner)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), ranked)
	},
}

var atsCmd = &cobra.Command{
	Use:   "ats",
	Short: "Print the full ATS report of a resume against a job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		resumeID, _ := cmd.Flags().GetUint("resume")
		jobID, _ := cmd.Flags().GetUint("job")
		owner, err := ownerFlag(cmd)
		if err != nil {
			return err
		}

		d, err := depsFactory(cmd.Context())
		if err != nil {
			return err
		}
		report, err := d.ranking.AtsReportForResume(cmd.Context(), resumeID, jobID, owner)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), report)
	},
}

func init() {
	rootCmd.AddCommand(rebuildCmd, rankCmd, atsCmd)

	rebuildCmd.Flags().Uint("job", 0, "job id")
	rebuildCmd.Flags().Bool("all", false, "rebuild the reports of every job")
	rebuildCmd.Flags().String("owner", "", "only rebuild reports of this owner's resumes")

	rankCmd.Flags().Uint("resume", 0, "resume id")
	rankCmd.Flags().String("owner", "", "owner of the resume")
	_ = rankCmd.MarkFlagRequired("resume")
	_ = rankCmd.MarkFlagRequired("owner")

	atsCmd.Flags().Uint("resume", 0, "resume id")
	atsCmd.Flags().Uint("job", 0, "job id")
	atsCmd.Flags().String("owner", "", "owner of the resume")
	_ = atsCmd.MarkFlagRequired("resume")
	_ = atsCmd.MarkFlagRequired("job")
	_ = atsCmd.MarkFlagRequired("owner")
}

func ownerFlag(cmd *cobra.Command) (uuid.UUID, error) {
	raw, _ := cmd.Flags().GetString("owner")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --owner: %w", err)
	}
	return id, nil
}
