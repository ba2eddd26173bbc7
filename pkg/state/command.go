package state

import (
	"slices"
	"strings"
)

type CommandType string

const (
	CmdHelp      CommandType = "help"
	CmdInfo      CommandType = "info"
	CmdIgnore    CommandType = "ignore" // bot-level commands handled outside the game
	CmdQuit      CommandType = "quit"
	CmdLook      CommandType = "look"
	CmdInventory CommandType = "inventory"
	CmdTakeAll   CommandType = "take_all"
	CmdSkip      CommandType = "skip"
	CmdNoSkip    CommandType = "noskip"
	CmdSetName   CommandType = "setname"
	CmdSearch    CommandType = "search"
	CmdLeave     CommandType = "leave"
	CmdGo        CommandType = "go"
	CmdTake      CommandType = "take"
	CmdUse       CommandType = "use"
	CmdDrop      CommandType = "drop"
	CmdNone      CommandType = "" // No rule matched
)

// MatchKind is how a rule's keywords are compared with the input.
type MatchKind int

const (
	MatchExact  MatchKind = iota // the whole line equals a keyword
	MatchPrefix                  // the line starts with a keyword
	MatchWord                    // a keyword appears anywhere as whole words
)

// Rule is one row of the command grammar.
type Rule struct {
	Kind     MatchKind
	Keywords []string
	Command  CommandType
	// Trailing words dropped from the argument, e.g. "port" in "go through front port".
	Trailing []string
}

// Grammar is the main command table. Matching runs tier by tier (every exact rule, then every
// prefix rule, then every word rule) and the first rule that matches wins. Word rules need the
// keyword as whole words so "take cargo" is a take and never a go.
var Grammar = []Rule{
	{Kind: MatchExact, Keywords: []string{"help", "h"}, Command: CmdHelp},
	{Kind: MatchExact, Keywords: []string{"info", "background", "b"}, Command: CmdInfo},
	{Kind: MatchExact, Keywords: []string{"logs", "log", "log.txt"}, Command: CmdIgnore},
	{Kind: MatchExact, Keywords: []string{"quit", "q"}, Command: CmdQuit},
	{Kind: MatchExact, Keywords: []string{"look around", "look", "la", "l"}, Command: CmdLook},
	{Kind: MatchExact, Keywords: []string{"show inventory", "inventory", "si", "i"}, Command: CmdInventory},
	{Kind: MatchExact, Keywords: []string{"take all", "ta"}, Command: CmdTakeAll},
	{Kind: MatchExact, Keywords: []string{"skip", "s"}, Command: CmdSkip},
	{Kind: MatchExact, Keywords: []string{"noskip", "ns", "n"}, Command: CmdNoSkip},
	{Kind: MatchPrefix, Keywords: []string{"setname"}, Command: CmdSetName},
	{Kind: MatchWord, Keywords: []string{"search"}, Command: CmdSearch},
	{Kind: MatchWord, Keywords: []string{"leave"}, Command: CmdLeave},
	{Kind: MatchWord, Keywords: []string{"go through", "gt", "go"}, Command: CmdGo, Trailing: []string{"port", "p"}},
	{Kind: MatchWord, Keywords: []string{"take"}, Command: CmdTake},
	{Kind: MatchWord, Keywords: []string{"use"}, Command: CmdUse},
	{Kind: MatchWord, Keywords: []string{"drop"}, Command: CmdDrop},
}

// Command is a parsed line of input.
type Command struct {
	Type    CommandType
	Arg     string // item, container, direction or name
	Keyword string // the keyword that matched, for logging
}

// ParseCommand matches a line against Grammar. line must already be trimmed and lowercased; raw is
// the line as typed, used where the argument keeps its case (setname).
func ParseCommand(line, raw string) Command {
	return parse(Grammar, line, raw)
}

func parse(grammar []Rule, line, raw string) Command {
	line = strings.TrimSpace(line)
	raw = strings.TrimSpace(raw)
	if line == "" {
		return Command{}
	}
	for _, kind := range []MatchKind{MatchExact, MatchPrefix, MatchWord} {
		for _, rule := range grammar {
			if rule.Kind != kind {
				continue
			}
			for _, kw := range rule.Keywords {
				if arg, ok := match(rule, kw, line, raw); ok {
					return Command{Type: rule.Command, Arg: arg, Keyword: kw}
				}
			}
		}
	}
	return Command{}
}

func match(rule Rule, kw, line, raw string) (string, bool) {
	switch rule.Kind {
	case MatchExact:
		return "", line == kw
	case MatchPrefix:
		if !strings.HasPrefix(line, kw) {
			return "", false
		}
		if len(raw) >= len(kw) && strings.EqualFold(raw[:len(kw)], kw) {
			return strings.TrimSpace(raw[len(kw):]), true
		}
		return strings.TrimSpace(line[len(kw):]), true
	case MatchWord:
		words := strings.Fields(line)
		kwWords := strings.Fields(kw)
		for i := 0; i+len(kwWords) <= len(words); i++ {
			if !slices.Equal(words[i:i+len(kwWords)], kwWords) {
				continue
			}
			rest := words[i+len(kwWords):]
			if len(rest) > 1 && slices.Contains(rule.Trailing, rest[len(rest)-1]) {
				rest = rest[:len(rest)-1]
			}
			return strings.Join(rest, " "), true
		}
	}
	return "", false
}

// LaptopCommandType is an action in the laptop's own menu.
type LaptopCommandType string

const (
	LaptopOff       LaptopCommandType = "off"
	LaptopBrowse    LaptopCommandType = "browse"
	LaptopRead      LaptopCommandType = "read"
	LaptopMessenger LaptopCommandType = "messenger"
	LaptopPlay      LaptopCommandType = "play"
	LaptopControl   LaptopCommandType = "control"
	LaptopNone      LaptopCommandType = ""
)

// LaptopGrammar maps exact phrases to laptop actions.
var LaptopGrammar = []Rule{
	{Kind: MatchExact, Keywords: []string{"turn off laptop", "turn off", "off", "shut down"}, Command: CommandType(LaptopOff)},
	{Kind: MatchExact, Keywords: []string{"browse web", "browse", "web"}, Command: CommandType(LaptopBrowse)},
	{Kind: MatchExact, Keywords: []string{"read files", "read", "files"}, Command: CommandType(LaptopRead)},
	{Kind: MatchExact, Keywords: []string{"use messenger app", "use messenger", "messenger app", "messenger"}, Command: CommandType(LaptopMessenger)},
	{Kind: MatchExact, Keywords: []string{"play text game", "play game", "text game", "play"}, Command: CommandType(LaptopPlay)},
	{Kind: MatchExact, Keywords: []string{"control station module", "control station", "control module", "control"}, Command: CommandType(LaptopControl)},
}

// ParseLaptopCommand matches a lowercased line against LaptopGrammar.
func ParseLaptopCommand(line string) LaptopCommandType {
	return LaptopCommandType(parse(LaptopGrammar, line, line).Type)
}

var affirmatives = []string{"yes", "y", "yeah", "yep"}

// IsAffirmative reports whether a lowercased answer contains a yes.
func IsAffirmative(line string) bool {
	for _, w := range strings.Fields(line) {
		if slices.Contains(affirmatives, strings.Trim(w, ".!?,")) {
			return true
		}
	}
	return false
}
