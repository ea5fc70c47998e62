package command

import "strings"

// Command is one line typed into the REPL or sent to the bot.
type Command struct {
	Roll     *RollCmd     `parser:"( @@"`
	Describe *DescribeCmd `parser:"| @@"`
	Seed     *SeedCmd     `parser:"| @@"`
	History  *HistoryCmd  `parser:"| @@"`
	Help     *HelpCmd     `parser:"| @@ )"`
}

// RollCmd rolls a dice notation, optionally on behalf of someone.
type RollCmd struct {
	Keyword  string     `parser:"@\"roll\""`
	Actor    *ActorExpr `parser:"@@?"`
	Notation []string   `parser:"@(Int|Word)+"`
}

// ActorExpr maps parsing the optional "by: Someone" block
type ActorExpr struct {
	Keyword string `parser:"\"by\" \":\""`
	Name    string `parser:"@(Word|Int|Keyword)"`
}

// DescribeCmd parses a notation without rolling it.
type DescribeCmd struct {
	Keyword  string   `parser:"@\"describe\""`
	Notation []string `parser:"@(Int|Word)+"`
}

// SeedCmd switches the session to a deterministic source.
type SeedCmd struct {
	Keyword string `parser:"@\"seed\""`
	Value   int64  `parser:"@Int"`
}

// HistoryCmd lists previously rolled notations.
type HistoryCmd struct {
	Keyword string `parser:"@\"history\""`
}

// HelpCmd provides usage for one command or all of them.
type HelpCmd struct {
	Keyword string `parser:"@\"help\""`
	Topic   string `parser:"@(Keyword|Word)?"`
}

// Text joins the notation tokens back into a single string.
func (r *RollCmd) Text() string {
	return strings.Join(r.Notation, " ")
}

// Text joins the notation tokens back into a single string.
func (d *DescribeCmd) Text() string {
	return strings.Join(d.Notation, " ")
}
