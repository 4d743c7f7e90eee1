package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newMigrateCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Migrate(dir); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "migrations directory (default: auto-detect)")
	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var (
		learnerID int
		language  string
		output    string // file path or "-" for stdout
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a learner's vocabulary to an xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, resolved, err := app.Vocabulary.Export(cmd.Context(), learnerID, language)
			if err != nil {
				return fmt.Errorf("export vocabulary: %w", err)
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if output == "" {
				output = fmt.Sprintf("vocabulary-%d-%s.xlsx", learnerID, resolved)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s vocabulary to %s\n", resolved, output)
			return nil
		},
	}

	cmd.Flags().IntVar(&learnerID, "learner", 0, "learner id")
	cmd.Flags().StringVar(&language, "language", "", "language id (default: the learner's selected language)")
	cmd.Flags().StringVarP(&output, "out", "o", "", `output file, "-" for stdout`)
	cmd.MarkFlagRequired("learner")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var (
		learnerID int
		language  string
		input     string // file path or "-" for stdin
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import words from an xlsx workbook into a learner's vocabulary",
		Long:  "Each row (Word, Translation, Sentence, Sentence translation, Source ID, Source title) becomes a new item.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return fmt.Errorf("open %s: %w", input, err)
				}
				defer f.Close()
				r = f
			}

			imported, err := app.Vocabulary.Import(cmd.Context(), learnerID, language, r)
			if err != nil {
				return fmt.Errorf("import vocabulary: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words.\n", imported)
			return nil
		},
	}

	cmd.Flags().IntVar(&learnerID, "learner", 0, "learner id")
	cmd.Flags().StringVar(&language, "language", "", "language id (default: the learner's selected language)")
	cmd.Flags().StringVarP(&input, "in", "i", "", `input xlsx file, "-" for stdin`)
	cmd.MarkFlagRequired("learner")
	cmd.MarkFlagRequired("in")
	return cmd
}

func newDueCmd(app *App) *cobra.Command {
	var (
		learnerID int
		language  string
	)

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List the words due for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Review.Due(cmd.Context(), learnerID, language)
			if err != nil {
				return fmt.Errorf("list due items: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "Nothing due for review.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "WORD\tTRANSLATION\tREVIEWS\tNEXT REVIEW")
			for _, item := range items {
				next := "now"
				if item.NextReview != nil {
					next = item.NextReview.UTC().Format(time.DateOnly)
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", item.OriginalWord, item.TranslatedWord, item.ReviewCount, next)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "%d due\n", len(items))
			return nil
		},
	}

	cmd.Flags().IntVar(&learnerID, "learner", 0, "learner id")
	cmd.Flags().StringVar(&language, "language", "", "language id (default: the learner's selected language)")
	cmd.MarkFlagRequired("learner")
	return cmd
}

func newTokenCmd(app *App) *cobra.Command {
	var learnerID int

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a learner (development only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if learnerID <= 0 {
				return fmt.Errorf("learner id must be positive")
			}
			token, err := app.Tokens.GenerateAccessToken(learnerID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().IntVar(&learnerID, "learner", 0, "learner id")
	cmd.MarkFlagRequired("learner")
	return cmd
}
