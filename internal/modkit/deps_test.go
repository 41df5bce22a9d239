package modkit

import (
	"testing"

	"hitch/internal/adapters/github"
	"hitch/internal/platform/config"
)

func TestDeps_ZeroValue_IsOK(t *testing.T) {
	t.Parallel()
	var d Deps
	if !d.ZeroOK() {
		t.Fatal("zero-value Deps should be safe in tests (ZeroOK == true)")
	}
	if d.GitHub != nil {
		t.Fatal("zero-value Deps should not carry a GitHub client")
	}
}

func TestDeps_NonZero_IsAlsoOK(t *testing.T) {
	t.Parallel()

	d := Deps{
		Cfg:    config.New(),
		GitHub: github.NewClient(github.Options{BaseURL: "http://127.0.0.1:1"}),
	}
	if !d.ZeroOK() {
		t.Fatal("non-zero Deps should also report ZeroOK == true")
	}
	if d.GitHub.BaseURL() != "http://127.0.0.1:1" {
		t.Fatalf("BaseURL = %q", d.GitHub.BaseURL())
	}
}
