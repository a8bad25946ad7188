package command

import (
	"errors"
	"strings"
	"testing"
)

func newTestParser() *Parser {
	return New([]string{"apple", "candy", "toy"})
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		verb Verb
		item string
	}{
		{"apple", VerbSelect, "apple"},
		{"select candy", VerbSelect, "candy"},
		{"Pick TOY", VerbSelect, "toy"},
		{"feed apple", VerbUse, "apple"},
		{"place", VerbPlace, ""},
		{"put candy", VerbUse, "candy"},
		{"rotate", VerbRotate, ""},
		{"spin", VerbRotate, ""},
		{"use rotate", VerbRotate, ""},
		{"help", VerbHelp, ""},
		{"q", VerbQuit, ""},
	}
	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := p.Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got.Verb != tt.verb || got.Item != tt.item {
				t.Errorf("Parse(%q) = %s %q, expected %s %q", tt.in, got.Verb, got.Item, tt.verb, tt.item)
			}
		})
	}
}

func TestParseFuzzy(t *testing.T) {
	tests := []struct {
		in   string
		verb Verb
		item string
	}{
		{"feed aple", VerbUse, "apple"},
		{"pick cnady", VerbSelect, "candy"},
		{"feeed toy", VerbUse, "toy"},
		{"ap", VerbSelect, "apple"},
		{"use ca", VerbUse, "candy"},
		{"rotat", VerbRotate, ""},
		{"spn", VerbRotate, ""},
		{"give an apple", VerbUse, "apple"},
	}
	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := p.Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got.Verb != tt.verb || got.Item != tt.item {
				t.Errorf("Parse(%q) = %s %q, expected %s %q", tt.in, got.Verb, got.Item, tt.verb, tt.item)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"dance", ErrUnknownCommand},
		{"feed", ErrMissingItem},
		{"feed banana", ErrUnknownItem},
		{"select x", ErrUnknownItem},
	}
	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := p.Parse(tt.in)
			if !errors.Is(err, tt.err) {
				t.Errorf("Parse(%q) error = %v, expected %v", tt.in, err, tt.err)
			}
		})
	}
}

func TestHelpListsVerbs(t *testing.T) {
	h := Help()
	for _, want := range []string{"select <item>", "place", "use <item>", "rotate", "quit"} {
		if !strings.Contains(h, want) {
			t.Errorf("Help() = %q, missing %q", h, want)
		}
	}
}

func TestParseAliases(t *testing.T) {
	p := newTestParser()
	p.Alias("1", "apple")
	p.Alias("3", "toy")
	p.Alias("4", "rotate")
	tests := []struct {
		in   string
		verb Verb
		item string
	}{
		{"3", VerbSelect, "toy"},
		{"feed 1", VerbUse, "apple"},
		{"4", VerbRotate, ""},
		{"use 4", VerbRotate, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := p.Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got.Verb != tt.verb || got.Item != tt.item {
				t.Errorf("Parse(%q) = %s %q, expected %s %q", tt.in, got.Verb, got.Item, tt.verb, tt.item)
			}
		})
	}
	// Unregistered digits are still unknown.
	if _, err := p.Parse("2"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Parse(\"2\") error = %v, expected ErrUnknownCommand", err)
	}
}
