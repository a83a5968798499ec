// Package main provides the CLI entry point for deckgen.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/umuganda-platform/deckgen-go/pkg/deckgen"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deckgen",
		Short: "Generate the Umuganda platform presentation",
		Long: `deckgen builds the slide deck presenting the Umuganda social impact
tracking platform and writes it to Umuganda_Platform_Presentation.pptx.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts := deckgen.DefaultOptions()

	deck := deckgen.Build()
	if err := deckgen.Write(deck, opts); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	fmt.Printf("✅ Presentation created: %s\n", opts.OutputPath)
	fmt.Printf("📊 Total slides: %d\n", len(deck.Slides))
	fmt.Printf("📁 Location: %s\n", opts.OutputPath)
	return nil
}
