package commands

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/gitzsh/gitz/internal/cli/prompt"
	"github.com/gitzsh/gitz/internal/config"
	"github.com/gitzsh/gitz/internal/config/updater"
	gitzerrors "github.com/gitzsh/gitz/internal/errors"
)

var (
	updateScopesAny     bool
	updateNoTicket      bool
	updateRequireTicket bool
	updateHashPrefix    bool
)

func init() {
	updateCmd.Flags().BoolVar(&updateScopesAny, "scopes-any", false,
		"accept any scope instead of keeping the scope list")
	updateCmd.Flags().BoolVar(&updateNoTicket, "no-ticket", false,
		"stop asking for a ticket reference")
	updateCmd.Flags().BoolVar(&updateRequireTicket, "require-ticket", false,
		"keep asking for a ticket reference and make it mandatory")
	updateCmd.MarkFlagsMutuallyExclusive("no-ticket", "require-ticket")
	updateCmd.Flags().BoolVar(&updateHashPrefix, "hash-prefix", false,
		"replace an empty ticket prefix with #")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the configuration to the current version",
	Long: `Update the git-z.toml of the current repository to the current
configuration version.

The migration preserves the comments and formatting of the file. When a
schema change needs a decision, the wizard asks for it; the flags below
answer all questions up front instead.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runUpdate(cmd)
	},
}

// updateDecisions are the answers a v0.1 migration may need.
type updateDecisions struct {
	switchScopesToAny bool
	ticket            updater.AskForTicket
	emptyPrefixToHash bool
}

func runUpdate(cmd *cobra.Command) error {
	if err := ensureInWorktree(); err != nil {
		return err
	}

	u, err := updater.Load()
	if err != nil {
		return mapUpdaterLoadError(err)
	}

	version := u.ConfigVersion()
	slog.Debug("configuration loaded", "version", version)

	switch version {
	case config.Version:
		success("The configuration is already up to date.")
		return nil
	case "0.1":
		decisions, err := gatherV01Decisions(cmd, u.ParsedConfig())
		if err != nil {
			return err
		}
		updated, err := u.UpdateFromV01(
			decisions.switchScopesToAny,
			decisions.ticket,
			decisions.emptyPrefixToHash,
		)
		if err != nil {
			return err
		}
		if err := updated.Save(); err != nil {
			return gitzerrors.NewSystemError(err, "check the repository permissions")
		}
		success("The configuration has been updated.")
		return nil
	default:
		return gitzerrors.NewUserError(
			errors.Newf("unknown configuration version %q", version),
			"it may have been written by a more recent gitz release",
		)
	}
}

// mapUpdaterLoadError turns the updater's load failures into actionable
// user-facing errors.
func mapUpdaterLoadError(err error) error {
	if errors.Is(err, updater.ErrNoConfigFile) {
		return gitzerrors.NewUserError(err, "run gitz init to create a configuration")
	}
	var devErr *config.UnsupportedDevelopmentVersionError
	if errors.As(err, &devErr) {
		return gitzerrors.NewUserError(err,
			"install git-z "+devErr.BridgingRelease+" and run its update command first")
	}
	return err
}

// gatherV01Decisions collects the answers a v0.1 migration needs, either
// from the command line flags or by asking the user. Any decision flag set
// on the command line makes the whole run non-interactive.
func gatherV01Decisions(cmd *cobra.Command, cfg *config.Config) (updateDecisions, error) {
	flags := cmd.Flags()
	nonInteractive := flags.Changed("scopes-any") ||
		flags.Changed("no-ticket") ||
		flags.Changed("require-ticket") ||
		flags.Changed("hash-prefix")

	if nonInteractive {
		decisions := updateDecisions{
			switchScopesToAny: updateScopesAny,
			ticket:            updater.Ask(updateRequireTicket),
			emptyPrefixToHash: updateHashPrefix,
		}
		if updateNoTicket {
			decisions.ticket = updater.DontAsk
		}
		return decisions, nil
	}

	return askV01Decisions(cfg)
}

func askV01Decisions(cfg *config.Config) (updateDecisions, error) {
	var decisions updateDecisions
	selector := prompt.NewSelector()

	if cfg.Scopes != nil {
		choice, err := selector.Select(
			"Scopes are now accepted from a list by default. What should gitz do with yours?",
			[]string{
				"Keep accepting scopes from the list",
				"Accept any arbitrary scope",
			},
			0,
		)
		if err != nil {
			return decisions, err
		}
		decisions.switchScopesToAny = choice == 1
	}

	ticketChoice, err := selector.Select(
		"Should gitz ask for a ticket number?",
		[]string{
			"Require a ticket number",
			"Ask for an optional ticket number",
			"Do not ask for a ticket number",
		},
		1,
	)
	if err != nil {
		return decisions, err
	}
	switch ticketChoice {
	case 0:
		decisions.ticket = updater.Ask(true)
	case 1:
		decisions.ticket = updater.Ask(false)
	default:
		decisions.ticket = updater.DontAsk
	}

	if hasEmptyPrefix(cfg) {
		choice, err := selector.Select(
			"An empty ticket prefix now matches bare numbers only. Replace it with #?",
			[]string{
				"Replace the empty prefix with #",
				"Keep the empty prefix",
			},
			0,
		)
		if err != nil {
			return decisions, err
		}
		decisions.emptyPrefixToHash = choice == 0
	}

	return decisions, nil
}

func hasEmptyPrefix(cfg *config.Config) bool {
	if cfg.Ticket == nil {
		return false
	}
	for _, prefix := range cfg.Ticket.Prefixes {
		if prefix == "" {
			return true
		}
	}
	return false
}
