// Command jpoetry finds fixed-form poems in text and exposes the syllable
// counter and numeral speller on the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jpoetry/jpoetry"
	"github.com/jpoetry/jpoetry/glyphs"
	"github.com/jpoetry/jpoetry/internal/config"
	"github.com/jpoetry/jpoetry/morph"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand needs once the root has run.
type app struct {
	configPath string
	verbose    bool

	cfg      *config.Config
	logger   *zap.Logger
	detector *jpoetry.Detector
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "jpoetry",
		Short: "Find hokku, tanka and other syllabic poems in text",
		Long: `jpoetry re-segments text into fixed-form syllabic poems.

Supported forms: katauta (5-7-7), hokku (5-7-5), tanka (5-7-5-7-7),
bussokusekika (5-7-5-7-7-7) and sedoka (5-7-7-5-7-7). Numerals are spelled
out in Russian before their syllables are counted.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "path to the YAML config")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newDetectCmd(a),
		newCountCmd(a),
		newSpellCmd(a),
		newGenresCmd(a),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	logger, err := cfg.NewLogger(a.verbose)
	if err != nil {
		return err
	}
	lex, err := morph.Default()
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}
	filter := glyphs.Default()
	if cfg.GlyphsFile != "" {
		if filter, err = glyphs.Load(cfg.GlyphsFile); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger = logger
	a.detector = jpoetry.NewDetector(lex, jpoetry.WithLogger(logger), jpoetry.WithFilter(filter))
	logger.Debug("Initialized", zap.String("config", cfg.Path()))
	return nil
}
