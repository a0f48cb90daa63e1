package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ednadion/lamark/internal/linkedart"
	"github.com/ednadion/lamark/internal/markdown"
	"github.com/ednadion/lamark/internal/rdf"
	"github.com/ednadion/lamark/pkg/jsontree"
)

var contextBundled bool

func init() {
	rootCmd.AddCommand(contextCmd)
	contextCmd.Flags().BoolVarP(&contextBundled, "bundled", "", false, "print the bundled copy of the configured external context")
}

var contextCmd = &cobra.Command{
	Use:   "context [FILE]",
	Short: "Print the @context a conversion would emit",
	Long: `Print the JSON-LD @context a conversion would emit, combining the
configuration and, when a file is given, its front matter overrides.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := documentOptions()

		if contextBundled {
			raw, ok := rdf.BundledContext(opts.Context)
			if !ok {
				fmt.Fprintf(os.Stderr, "no bundled copy of %q\n", opts.Context)
				os.Exit(1)
			}
			fmt.Print(raw)
			return
		}

		if len(args) == 0 {
			if context := linkedart.BuildContext(opts); context != nil {
				fmt.Println(jsontree.Render(context))
			} else {
				fmt.Println("null")
			}
			return
		}

		file, err := markdown.ParseFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		document, err := linkedart.Transform(file, opts)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(document.Context())
	},
}
