package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ednadion/lamark/internal/core"
	"github.com/ednadion/lamark/internal/linkedart"
	"github.com/ednadion/lamark/internal/markdown"
	"github.com/ednadion/lamark/internal/rdf"
	"github.com/ednadion/lamark/pkg/text"
)

var convertFormat string
var convertOutput string
var convertBase string
var convertStrict bool

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "json", "output format (json, nquads, expanded)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output directory (default stdout)")
	convertCmd.Flags().StringVarP(&convertBase, "base", "b", "", "prefix combined with each file path to mint the graph name")
	convertCmd.Flags().BoolVarP(&convertStrict, "strict", "s", false, "fail on unresolved terms instead of warning")
}

var convertCmd = &cobra.Command{
	Use:   "convert FILE...",
	Short: "Convert Markdown documents to Linked Art JSON-LD",
	Long: `Convert one or more Markdown documents to Linked Art JSON-LD.
Each document is converted independently; the first fatal error aborts.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, err := rdf.ParseFormat(convertFormat)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		for _, path := range args {
			if err := convertFile(path, format); err != nil {
				color.New(color.FgRed).Fprintf(os.Stderr, "%s: %v\n", path, err)
				os.Exit(1)
			}
		}
	},
}

func convertFile(path string, format rdf.Format) error {
	core.CurrentLogger().Infof("Converting %s...", path)

	file, err := markdown.ParseFile(path)
	if err != nil {
		return err
	}

	opts := documentOptions()
	if convertStrict {
		opts.Strict = true
	}
	if convertBase != "" {
		opts.GraphName = graphName(convertBase, path)
	}

	document, err := linkedart.Transform(file, opts)
	if err != nil {
		return err
	}
	for _, warning := range document.Warnings() {
		color.New(color.FgYellow).Fprintf(os.Stderr, "%s: %v\n", path, warning)
	}

	output, err := rdf.Serialize(document.String(), format)
	if err != nil {
		return err
	}

	if convertOutput == "" {
		fmt.Println(output)
		return nil
	}
	destination := filepath.Join(convertOutput, text.TrimExtension(filepath.Base(path))+outputExtension(format))
	core.CurrentLogger().Debugf("Writing %s", destination)
	return os.WriteFile(destination, []byte(strings.TrimRight(output, "\n")+"\n"), 0644)
}

// documentOptions maps the configuration file onto per-document options.
// Front matter and command-line flags override it later.
func documentOptions() linkedart.Options {
	document := core.CurrentConfig().Document
	return linkedart.Options{
		Autotype:            document.Autotype,
		Language:            document.Language,
		Base:                document.Base,
		Vocab:               document.Vocab,
		Context:             document.Context,
		GraphName:           document.GraphName,
		FrontmatterMetadata: document.FrontmatterMetadata,
		ImageType:           document.ImageType,
		QuoteType:           document.QuoteType,
		Strict:              document.Strict,
	}
}

// graphName mints the per-file graph name: the base IRI followed by the
// file path without its extension.
func graphName(base string, path string) string {
	name := filepath.ToSlash(text.TrimExtension(path))
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(name, "/")
}

func outputExtension(format rdf.Format) string {
	if format == rdf.FormatNQuads {
		return ".nq"
	}
	return ".json"
}
