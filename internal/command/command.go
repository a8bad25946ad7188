// Package command parses the typed commands of the game scene's command
// line ("feed apple", "spin", "pick cnady") into intents. Verbs and item
// names are matched exactly, then by prefix, then by edit distance.
package command

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Verb is a canonical command verb.
type Verb string

const (
	VerbSelect Verb = "select" // pick an item button
	VerbPlace  Verb = "place"  // place the selected item (or the named one)
	VerbUse    Verb = "use"    // select and place in one go
	VerbRotate Verb = "rotate"
	VerbHelp   Verb = "help"
	VerbQuit   Verb = "quit"
)

var (
	ErrEmpty          = errors.New("command: empty input")
	ErrUnknownCommand = errors.New("command: unknown command")
	ErrUnknownItem    = errors.New("command: unknown item")
	ErrMissingItem    = errors.New("command: item required")
)

// Intent is a parsed command.
type Intent struct {
	Raw  string
	Verb Verb
	Item string // canonical item id, empty when the verb takes none
}

type verbDef struct {
	verb    Verb
	aliases []string
	item    itemArg
}

type itemArg int

const (
	itemNone itemArg = iota
	itemOptional
	itemRequired
)

var verbs = []verbDef{
	{VerbSelect, []string{"select", "pick", "choose", "take"}, itemRequired},
	{VerbPlace, []string{"place", "put", "drop"}, itemOptional},
	{VerbUse, []string{"use", "feed", "give", "eat", "play"}, itemRequired},
	{VerbRotate, []string{"rotate", "spin", "turn"}, itemNone},
	{VerbHelp, []string{"help", "?", "h"}, itemNone},
	{VerbQuit, []string{"quit", "exit", "q"}, itemNone},
}

// Parser resolves typed commands against a fixed set of item names.
type Parser struct {
	items   []string
	aliases map[string]string
}

// New returns a parser for the given item ids. The rotate action is
// always known, listed or not.
func New(items []string) *Parser {
	p := &Parser{aliases: make(map[string]string)}
	p.items = append(p.items, items...)
	if !slices.Contains(p.items, "rotate") {
		p.items = append(p.items, "rotate")
	}
	return p
}

// Alias makes name resolve to item on an exact match, e.g. a hotkey
// digit. Aliases never take part in fuzzy matching.
func (p *Parser) Alias(name, item string) {
	p.aliases[normalise(name)] = item
}

// Parse turns raw input into an intent.
// A bare item name selects it ("apple" == "select apple"); a bare
// "rotate" rotates.
func (p *Parser) Parse(raw string) (Intent, error) {
	tokens := strings.Fields(normalise(raw))
	if len(tokens) == 0 {
		return Intent{}, ErrEmpty
	}
	in := Intent{Raw: raw}

	def, ok := matchVerb(tokens[0])
	if !ok {
		// Bare item name.
		item, err := p.matchItem(tokens[0])
		if err != nil {
			return Intent{}, fmt.Errorf("%w: %q", ErrUnknownCommand, tokens[0])
		}
		if item == "rotate" {
			in.Verb = VerbRotate
			return in, nil
		}
		in.Verb = VerbSelect
		in.Item = item
		return in, nil
	}
	in.Verb = def.verb

	args := tokens[1:]
	// "give the apple", "feed it an apple"
	args = dropFiller(args)
	switch def.item {
	case itemNone:
		return in, nil
	case itemRequired:
		if len(args) == 0 {
			return Intent{}, fmt.Errorf("%w: %s what?", ErrMissingItem, def.verb)
		}
	}
	if len(args) > 0 {
		item, err := p.matchItem(strings.Join(args, " "))
		if err != nil {
			return Intent{}, err
		}
		if item == "rotate" {
			in.Verb = VerbRotate
			return in, nil
		}
		in.Item = item
		if in.Verb == VerbPlace {
			in.Verb = VerbUse
		}
	}
	return in, nil
}

// Help lists the verbs with their aliases.
func Help() string {
	var b strings.Builder
	for i, d := range verbs {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(d.aliases[0])
		if d.item == itemRequired {
			b.WriteString(" <item>")
		}
	}
	return b.String()
}

func matchVerb(token string) (verbDef, bool) {
	for _, d := range verbs {
		for _, a := range d.aliases {
			if a == token {
				return d, true
			}
		}
	}
	var (
		best     verbDef
		bestDist = -1
		tie      bool
	)
	for _, d := range verbs {
		for _, a := range d.aliases {
			if len(a) < 3 {
				continue
			}
			dist := levenshtein.ComputeDistance(token, a)
			if dist > distanceLimit(len(a)) {
				continue
			}
			switch {
			case bestDist < 0 || dist < bestDist:
				best, bestDist, tie = d, dist, false
			case dist == bestDist && best.verb != d.verb:
				tie = true
			}
		}
	}
	if bestDist < 0 || tie {
		return verbDef{}, false
	}
	return best, true
}

func (p *Parser) matchItem(token string) (string, error) {
	if item, ok := p.aliases[token]; ok {
		return item, nil
	}
	names := p.items
	for _, n := range names {
		if n == token {
			return n, nil
		}
	}

	// Unique prefix of at least two characters.
	if len(token) >= 2 {
		var hits []string
		for _, n := range names {
			if strings.HasPrefix(n, token) {
				hits = append(hits, n)
			}
		}
		if len(hits) == 1 {
			return hits[0], nil
		}
		if len(hits) > 1 {
			return "", fmt.Errorf("%w: %q could be %s", ErrUnknownItem, token, strings.Join(hits, " or "))
		}
	}

	best, bestDist, tie := "", -1, false
	for _, n := range names {
		dist := levenshtein.ComputeDistance(token, n)
		if dist > distanceLimit(len(n)) {
			continue
		}
		switch {
		case bestDist < 0 || dist < bestDist:
			best, bestDist, tie = n, dist, false
		case dist == bestDist:
			tie = true
		}
	}
	if bestDist < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownItem, token)
	}
	if tie {
		return "", fmt.Errorf("%w: %q is ambiguous", ErrUnknownItem, token)
	}
	return best, nil
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

var fillers = map[string]bool{"a": true, "an": true, "the": true, "it": true, "him": true, "her": true, "some": true}

func dropFiller(tokens []string) []string {
	out := tokens[:0:0]
	for _, t := range tokens {
		if !fillers[t] {
			out = append(out, t)
		}
	}
	return out
}

func normalise(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '?':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '-' || r == '_':
			b.WriteByte(' ')
		}
	}
	return b.String()
}
