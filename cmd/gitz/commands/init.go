package commands

import (
	"bytes"
	_ "embed"
	"log/slog"
	"os"
	"text/template"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/gitzsh/gitz/internal/cli/prompt"
	"github.com/gitzsh/gitz/internal/config"
	gitzerrors "github.com/gitzsh/gitz/internal/errors"
)

//go:embed templates/git-z.toml.tmpl
var scaffoldText string

var scaffoldTemplate = template.Must(template.New("git-z.toml").Parse(scaffoldText))

// scaffoldParams are the answers needed to generate a git-z.toml.
type scaffoldParams struct {
	// AskScopes reports whether the commit wizard should ask for a scope.
	AskScopes bool
	// ScopesAccept is the kind of accepted scopes, "any" or "list".
	ScopesAccept string
	// AskTicket reports whether the commit wizard should ask for a ticket.
	AskTicket bool
	// TicketRequired makes the ticket reference mandatory.
	TicketRequired bool
	// CommitTemplate is the commit message template.
	CommitTemplate string
}

func defaultScaffoldParams() scaffoldParams {
	return scaffoldParams{
		AskScopes:      true,
		ScopesAccept:   string(config.AcceptAny),
		AskTicket:      true,
		TicketRequired: false,
		CommitTemplate: config.DefaultCommitTemplate(),
	}
}

var (
	initDefault bool
	initForce   bool
)

func init() {
	initCmd.Flags().BoolVarP(&initDefault, "default", "d", false,
		"use the default configuration instead of running the wizard")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"replace any existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a git-z.toml in the current repository",
	Long: `Create a git-z.toml at the root of the current Git repository.

By default a short wizard asks how scopes and ticket references should be
handled; --default skips it and writes the standard configuration.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runInit()
	},
}

func runInit() error {
	if err := ensureInWorktree(); err != nil {
		return err
	}

	path, err := config.FilePath()
	if err != nil {
		return err
	}

	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return gitzerrors.NewUserError(
				errors.Newf("there is already a %s in the current repository", config.FileName),
				"use --force to replace it",
			)
		}
	}

	params := defaultScaffoldParams()
	if !initDefault {
		params, err = runInitWizard()
		if err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := scaffoldTemplate.Execute(&buf, params); err != nil {
		return errors.Wrap(err, "rendering the configuration")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return gitzerrors.NewSystemError(err, "check the repository permissions")
	}

	slog.Debug("configuration written", "path", path)
	success("A git-z.toml has been created!")
	hint("You can now edit it to adjust the configuration.")

	return nil
}

func runInitWizard() (scaffoldParams, error) {
	params := defaultScaffoldParams()
	selector := prompt.NewSelector()

	scopeChoice, err := selector.Select(
		"Should gitz ask for a scope?",
		[]string{
			"Ask for a scope, accept any",
			"Ask for a scope in a list",
			"Do not ask for a scope",
		},
		0,
	)
	if err != nil {
		return params, err
	}
	switch scopeChoice {
	case 0:
		params.AskScopes = true
		params.ScopesAccept = string(config.AcceptAny)
	case 1:
		params.AskScopes = true
		params.ScopesAccept = string(config.AcceptList)
	default:
		params.AskScopes = false
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
		return params, err
	}
	switch ticketChoice {
	case 0:
		params.AskTicket = true
		params.TicketRequired = true
	case 1:
		params.AskTicket = true
		params.TicketRequired = false
	default:
		params.AskTicket = false
	}

	return params, nil
}
