package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpoetry/jpoetry"
	"github.com/jpoetry/jpoetry/morph"
)

// readText joins args, or reads stdin when there are none or the only one is "-".
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func newDetectCmd(a *app) *cobra.Command {
	var (
		strict   bool
		all      bool
		describe bool
	)
	cmd := &cobra.Command{
		Use:   "detect [text...]",
		Short: "Detect poems in text or stdin",
		Long: `Detects poems paragraph by paragraph. A single line is reflowed into
every form with its syllable total; a paragraph of several lines is matched
line by line.

Example:
  jpoetry detect "Я вспомнил видос, где у мужика банка в жепе лопнула.."
  cat chat.txt | jpoetry detect --all --strict=false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("strict") {
				strict = a.cfg.Strict
			}
			poems, _, err := a.detector.DetectPoems(text, strict)
			if err != nil {
				return err
			}
			if !all {
				if best := jpoetry.BestPoem(poems); best != nil {
					poems = []*jpoetry.Poem{best}
				}
			}

			r := newRenderer(cmd.OutOrStdout())
			if len(poems) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), r.muted.Render("Стихов не найдено."))
				return nil
			}
			for _, p := range poems {
				fmt.Fprintln(cmd.OutOrStdout(), r.poem(p, describe))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", true, "keep only flawless poems (default from config)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "print every candidate instead of the best one")
	cmd.Flags().BoolVarP(&describe, "describe", "d", false, "annotate words with syllable counts")
	return cmd
}

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count <word>...",
		Short: "Count the syllables of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, total, err := a.detector.Counter().Annotate(args)
			if err != nil {
				return err
			}
			line := jpoetry.LineInfo{Words: infos, Syllables: total}
			fmt.Fprintln(cmd.OutOrStdout(), line.Describe())
			return nil
		},
	}
}

func newSpellCmd(a *app) *cobra.Command {
	var caseName string
	cmd := &cobra.Command{
		Use:   "spell <number>",
		Short: "Spell a numeral in Russian words",
		Long: `Spells a numeral token: integers up to 10^11, "56-й" style ordinals,
"3.5" decimals, "1/5" fractions and "10:30" ratios.

Example:
  jpoetry spell 1000
  jpoetry spell --case gent 300`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var c morph.Case
			if caseName != "" {
				var ok bool
				if c, ok = morph.ParseCase(caseName); !ok {
					return fmt.Errorf("unknown case %q", caseName)
				}
			}
			text, err := a.detector.Speller().Spell(args[0], c)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVar(&caseName, "case", "", "grammatical case: nomn, gent, datv, accs, ablt, loct")
	return cmd
}

func newGenresCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the supported poem forms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRenderer(cmd.OutOrStdout())
			for _, g := range a.detector.GenreSheet() {
				fmt.Fprintln(cmd.OutOrStdout(), r.genre(g))
			}
			return nil
		},
	}
}
