package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitzsh/gitz/internal/config"
)

func renderScaffold(t *testing.T, params scaffoldParams) string {
	t.Helper()
	var buf bytes.Buffer
	err := scaffoldTemplate.Execute(&buf, params)
	require.NoError(t, err)
	return buf.String()
}

func TestScaffoldDefaultIsCurrentConfig(t *testing.T) {
	rendered := renderScaffold(t, defaultScaffoldParams())

	cfg, err := config.FromTOML(rendered)
	require.NoError(t, err)
	require.Equal(t, config.Version, cfg.Version)
	require.Contains(t, cfg.Types.Keys(), "feat")
	require.Contains(t, cfg.Types.Keys(), "fix")
	require.NotNil(t, cfg.Scopes)
	require.Equal(t, config.AcceptAny, cfg.Scopes.Accept)
	require.NotNil(t, cfg.Ticket)
	require.False(t, cfg.Ticket.Required)
	require.Equal(t, []string{"#"}, cfg.Ticket.Prefixes)
	require.Equal(t, config.DefaultCommitTemplate(), cfg.Templates.Commit)
}

func TestScaffoldScopesList(t *testing.T) {
	params := defaultScaffoldParams()
	params.ScopesAccept = string(config.AcceptList)
	rendered := renderScaffold(t, params)

	cfg, err := config.FromTOML(rendered)
	require.NoError(t, err)
	require.NotNil(t, cfg.Scopes)
	require.Equal(t, config.AcceptList, cfg.Scopes.Accept)
	require.NotNil(t, cfg.Scopes.List)
}

func TestScaffoldWithoutScopes(t *testing.T) {
	params := defaultScaffoldParams()
	params.AskScopes = false
	rendered := renderScaffold(t, params)

	cfg, err := config.FromTOML(rendered)
	require.NoError(t, err)
	require.Nil(t, cfg.Scopes)
	require.NotContains(t, rendered, "[scopes]")
}

func TestScaffoldWithRequiredTicket(t *testing.T) {
	params := defaultScaffoldParams()
	params.TicketRequired = true
	rendered := renderScaffold(t, params)

	cfg, err := config.FromTOML(rendered)
	require.NoError(t, err)
	require.NotNil(t, cfg.Ticket)
	require.True(t, cfg.Ticket.Required)
}

func TestScaffoldWithoutTicket(t *testing.T) {
	params := defaultScaffoldParams()
	params.AskTicket = false
	rendered := renderScaffold(t, params)

	cfg, err := config.FromTOML(rendered)
	require.NoError(t, err)
	require.Nil(t, cfg.Ticket)
	require.NotContains(t, rendered, "[ticket]")
}

func TestScaffoldKeepsTemplatePlaceholders(t *testing.T) {
	rendered := renderScaffold(t, defaultScaffoldParams())

	for _, placeholder := range []string{"{{ type }}", "{{ description }}", "{% if ticket %}"} {
		require.True(t, strings.Contains(rendered, placeholder),
			"rendered scaffold should contain %s", placeholder)
	}
}

func TestInitCommandMetadata(t *testing.T) {
	require.Equal(t, "init", initCmd.Use)
	require.NotNil(t, initCmd.Flags().Lookup("default"))
	require.NotNil(t, initCmd.Flags().Lookup("force"))
}
