package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestCLI_CommandTree(t *testing.T) {
	root := NewRootCmd()

	want := []string{
		"datastore", "ordered-datastore", "messaging", "experience",
		"assets", "group", "user", "notification", "subscription",
		"universe", "place", "inventory", "luau", "user-restriction",
	}
	have := map[string]bool{}
	for _, c := range root.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("command %q is not registered", name)
		}
	}
}

func TestCLI_MissingAPIKey(t *testing.T) {
	t.Setenv("RBXCLOUD_API_KEY", "")

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"universe", "get", "-u", "1"})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected an error without an API key")
	}
	if !strings.Contains(err.Error(), "API key") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCLI_MissingRequiredFlag(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"universe", "get"})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected an error when --universe-id is missing")
	}
	if !strings.Contains(err.Error(), "universe-id") {
		t.Fatalf("unexpected error: %v", err)
	}
}
