package common

import (
	"strings"
	"testing"
)

func TestDefaultKeyMap_HasCriticalBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.Open.Keys()) == 0 || km.Open.Keys()[0] != "enter" {
		t.Fatalf("expected enter to open a post")
	}
	if len(km.Quit.Keys()) < 2 || km.Quit.Keys()[1] != "ctrl+c" {
		t.Fatalf("expected ctrl+c quit binding")
	}
	if len(km.Back.Keys()) == 0 || km.Back.Keys()[0] != "esc" {
		t.Fatalf("expected esc back binding")
	}
}

func TestHelpLine(t *testing.T) {
	km := DefaultKeyMap()
	got := HelpLine(km.Open, km.Quit)
	if !strings.Contains(got, "enter open") || !strings.Contains(got, "q quit") {
		t.Fatalf("unexpected help line: %q", got)
	}
}
