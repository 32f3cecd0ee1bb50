package config

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != Version {
		t.Errorf("Version = %q, want %q", cfg.Version, Version)
	}
	if cfg.Types.Len() == 0 {
		t.Error("Default() has no commit types")
	}
	if cfg.Scopes == nil || cfg.Scopes.Accept != AcceptAny {
		t.Errorf("Scopes = %+v, want accept any", cfg.Scopes)
	}
	if cfg.Ticket == nil || cfg.Ticket.Required {
		t.Errorf("Ticket = %+v, want optional", cfg.Ticket)
	}
	if cfg.Templates.Commit != DefaultCommitTemplate() {
		t.Error("Templates.Commit is not the default commit template")
	}
}

func TestDefaultCommitTemplate(t *testing.T) {
	template := DefaultCommitTemplate()

	for _, variable := range []string{"{{ type }}", "{{ description }}", "{{ ticket }}"} {
		if !strings.Contains(template, variable) {
			t.Errorf("default commit template does not use %s", variable)
		}
	}
	if !strings.Contains(template, "{% if ticket %}") {
		t.Error("default commit template does not guard the ticket line")
	}
}

func TestDefaultParsesAsCurrent(t *testing.T) {
	// The default configuration must itself satisfy the current schema.
	cfg := Default()

	if cfg.Scopes.Accept != AcceptAny && cfg.Scopes.List == nil {
		t.Error("default scopes accept a list without providing one")
	}
	if len(cfg.Ticket.Prefixes) == 0 {
		t.Error("default ticket configuration has no prefixes")
	}
}
