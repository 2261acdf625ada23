package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-tailor/internal/shared/util"
	"resume-tailor/resume/model"
	"resume-tailor/resume/render"
	"resume-tailor/resume/template"
)

var renderCmd = &cobra.Command{
	Use:   "render pdf|text <document.json>",
	Short: "Render a resume document to PDF or plain text",
	Args:  cobra.ExactArgs(2),
	RunE:  runRender,
}

var (
	renderTemplate string
	renderOut      string
	renderFontDir  string
)

func init() {
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", string(template.Default), "Template id: modern, corporate or creative")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output path (defaults to a name derived from the resume owner)")
	renderCmd.Flags().StringVar(&renderFontDir, "font-dir", os.Getenv("FONT_DIR"), "Directory with extra TrueType families")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	format, path := args[0], args[1]
	if format != "pdf" && format != "text" {
		return fmt.Errorf("unknown format %q (want pdf or text)", format)
	}
	id, ok := template.Parse(renderTemplate)
	if !ok {
		return fmt.Errorf("unknown template %q", renderTemplate)
	}

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	var (
		data []byte
		ext  = "pdf"
	)
	if format == "text" {
		data = []byte(render.PlainText(doc))
		ext = "txt"
	} else {
		r := render.NewPDFRenderer(render.PDFOptions{FontDir: renderFontDir, Title: doc.Personal.FullName})
		art, err := r.Render(cmd.Context(), doc, template.Lookup(id))
		if err != nil {
			return fmt.Errorf("render pdf: %w", err)
		}
		data = art.PDF
		fmt.Fprintf(cmd.ErrOrStderr(), "pages=%d font=%s\n", art.Pages, art.Family)
	}

	out := renderOut
	if out == "" {
		out = util.ExportFileName(doc.Personal.FullName, ext)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "OK: wrote %s\n", out)
	return nil
}

func loadDocument(path string) (model.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("read document: %w", err)
	}
	doc, err := model.Decode(raw)
	if err != nil {
		return model.Document{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}
