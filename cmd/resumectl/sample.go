package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-tailor/resume/model"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a filled-in example document as JSON",
	Args:  cobra.NoArgs,
	RunE:  runSample,
}

var sampleOut string

func init() {
	sampleCmd.Flags().StringVarP(&sampleOut, "out", "o", "", "Output path (stdout when empty)")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, _ []string) error {
	data, err := json.MarshalIndent(sampleDocument(), "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if sampleOut == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(sampleOut, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", sampleOut, err)
	}
	return nil
}

func sampleDocument() model.Document {
	return model.Document{
		Personal: model.Personal{
			FullName: "Ada Lovelace",
			Title:    "Analytical Engine Programmer",
			Email:    "ada@example.com",
			Phone:    "+44 20 7946 0000",
			Location: "London",
			Website:  "ada.example.com",
			Summary:  "Mathematician who wrote the first published algorithm intended for a machine.",
		},
		Experience: []model.Experience{
			{
				Company:     "Babbage & Co",
				Position:    "Collaborator",
				StartDate:   "1842",
				Current:     true,
				Description: "Translated and annotated Menabrea's paper on the Analytical Engine, adding notes A through G.",
			},
		},
		Education: []model.Education{
			{
				Institution: "Private tutoring",
				Degree:      "Mathematics",
				Field:       "Logic",
				StartDate:   "1832",
				EndDate:     "1840",
			},
		},
		Skills:       []string{"Mathematics", "Algorithms", "Technical writing"},
		Achievements: []string{"First published computer program"},
	}
}
