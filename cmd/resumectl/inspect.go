package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-tailor/resume/render"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.pdf>",
	Short: "Print the page count and extracted text of a rendered PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var inspectQuiet bool

func init() {
	inspectCmd.Flags().BoolVarP(&inspectQuiet, "quiet", "q", false, "Only print the page count")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read pdf: %w", err)
	}
	info, err := render.Inspect(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "pages: %d\n", info.Pages)
	if !inspectQuiet {
		fmt.Fprintln(cmd.OutOrStdout(), info.Text)
	}
	return nil
}
