package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/nagarseva/internal/api/dto"
	"github.com/spec-kit/nagarseva/internal/fixtures"
)

var fixturesPath string

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Validate the fixture file and print its seed issues as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := fixtures.Load(fixturesPath)
		if err != nil {
			return err
		}
		items := make([]dto.IssueResponse, 0, len(data.Issues))
		for i := range data.Issues {
			items = append(items, dto.NewIssueResponse(&data.Issues[i]))
		}
		out, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding issues: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	},
}

func init() {
	fixturesCmd.Flags().StringVar(&fixturesPath, "file", "", "fixture file to check (defaults to the embedded set)")
}
