package palette

import "testing"

func noop() error { return nil }

func testCommands() []Command {
	return []Command{
		{
			ID:       "nav-about",
			Label:    "Go to About",
			Category: CategoryNavigation,
			Keywords: []string{"about", "profile", "home"},
			Run:      noop,
		},
		{
			ID:       "nav-resume",
			Label:    "Go to Resume",
			Category: CategoryNavigation,
			Keywords: []string{"resume", "cv", "experience"},
			Run:      noop,
		},
		{
			ID:          "theme-toggle",
			Label:       "Toggle Theme",
			Description: "Switch between dark and light mode",
			Category:    CategoryTheme,
			Keywords:    []string{"dark", "light", "mode"},
			Run:         noop,
		},
		{
			ID:          "copy-email",
			Label:       "Copy Email",
			Description: "Copy the contact email address",
			Category:    CategoryActions,
			Keywords:    []string{"email", "contact", "clipboard"},
			Run:         noop,
		},
	}
}

func TestNewRegistryOmitsMalformedEntries(t *testing.T) {
	reg := NewRegistry([]Command{
		{ID: "ok", Label: "Fine", Run: noop},
		{ID: "", Label: "No ID", Run: noop},
		{ID: "no-label", Label: "   ", Run: noop},
		{ID: "no-run", Label: "No Action"},
	})
	if reg.Len() != 1 {
		t.Fatalf("registry len = %d, want 1", reg.Len())
	}
	if _, ok := reg.Get("ok"); !ok {
		t.Fatal("expected valid command to survive construction")
	}
}

func TestNewRegistryDuplicateIDFirstWins(t *testing.T) {
	reg := NewRegistry([]Command{
		{ID: "dup", Label: "First", Run: noop},
		{ID: "dup", Label: "Second", Run: noop},
	})
	if reg.Len() != 1 {
		t.Fatalf("registry len = %d, want 1", reg.Len())
	}
	cmd, _ := reg.Get("dup")
	if cmd.Label != "First" {
		t.Fatalf("label = %q, want First", cmd.Label)
	}
}

func TestRegistryAllPreservesOrder(t *testing.T) {
	reg := NewRegistry(testCommands())
	all := reg.All()
	want := []string{"nav-about", "nav-resume", "theme-toggle", "copy-email"}
	if len(all) != len(want) {
		t.Fatalf("len = %d, want %d", len(all), len(want))
	}
	for i, id := range want {
		if all[i].ID != id {
			t.Fatalf("all[%d].ID = %q, want %q", i, all[i].ID, id)
		}
	}
}

func TestRegistryAllReturnsCopy(t *testing.T) {
	reg := NewRegistry(testCommands())
	all := reg.All()
	all[0].ID = "mutated"
	if fresh := reg.All(); fresh[0].ID != "nav-about" {
		t.Fatalf("registry mutated through All(): %q", fresh[0].ID)
	}
}
