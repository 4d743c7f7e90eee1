// Package cli implements the vocabctl administration commands
package cli

import (
	"context"
	"io"

	"github.com/lingoread/backend/internal/models"
	"github.com/spf13/cobra"
)

// VocabularyService is the subset of the vocabulary service used by the CLI
type VocabularyService interface {
	Export(ctx context.Context, learnerID int, languageParam string) ([]byte, models.Language, error)
	Import(ctx context.Context, learnerID int, languageParam string, r io.Reader) (int, error)
}

// ReviewService is the subset of the review service used by the CLI
type ReviewService interface {
	Due(ctx context.Context, learnerID int, languageParam string) ([]models.VocabularyItem, error)
}

// TokenIssuer issues access tokens for a learner
type TokenIssuer interface {
	GenerateAccessToken(learnerID int) (string, error)
}

// App bundles the dependencies of the commands
type App struct {
	Vocabulary VocabularyService
	Review     ReviewService
	Tokens     TokenIssuer
	// Migrate applies pending migrations from "dir", empty means auto-detect.
	Migrate func(dir string) error
}

// NewRootCmd creates the root command for vocabctl.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "vocabctl",
		Short: "Administer LingoRead vocabularies",
		Long: `Maintenance tool for the LingoRead vocabulary service.

vocabctl can:
- Apply database migrations
- Export and import a learner's vocabulary as xlsx
- Show the words due for review
- Issue development access tokens`,
		SilenceUsage: true,
	}

	root.AddCommand(newMigrateCmd(app))
	root.AddCommand(newExportCmd(app))
	root.AddCommand(newImportCmd(app))
	root.AddCommand(newDueCmd(app))
	root.AddCommand(newTokenCmd(app))

	return root
}
