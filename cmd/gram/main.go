// Command gram is a thin CLI over the core engine: load a grammar (EBNF
// or YAML, by file extension), parse a source string against its start
// rule, and print the resulting token tree and diagnostics. Modeled
// directly on the reference material's T.REPL adapter (readline +
// pterm), repurposed from an s-expression sandbox to a grammar/parser
// front end.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/tracing"

	"github.com/latticeparse/gram/ebnf"
	"github.com/latticeparse/gram/grammar"
	"github.com/latticeparse/gram/parser"
	"github.com/latticeparse/gram/serial"
	"github.com/latticeparse/gram/token"
)

// tracer traces with key "gram.cmd".
func tracer() tracing.Trace {
	return tracing.Select("gram.cmd")
}

func main() {
	initDisplay()
	grammarPath := flag.String("grammar", "", "path to an EBNF (.ebnf) or YAML (.yaml/.yml) grammar file")
	start := flag.String("start", "", "start rule name (overrides the grammar's own start rule)")
	input := flag.String("i", "", "source text to parse (overrides any positional argument)")
	strict := flag.Bool("strict", false, "exit non-zero if the parse produces any diagnostics")
	repl := flag.Bool("repl", false, "enter interactive mode, re-parsing each line against the loaded grammar")
	flag.Parse()

	if *grammarPath == "" {
		pterm.Error.Println("missing -grammar")
		os.Exit(2)
	}
	g, err := loadGrammar(*grammarPath)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	if *start != "" {
		g.SetStart(*start)
	}
	if g.Start() == "" {
		pterm.Error.Println("no start rule: pass -start or set one in the grammar file")
		os.Exit(2)
	}

	if *repl {
		runREPL(g)
		return
	}

	src := *input
	if src == "" {
		src = strings.Join(flag.Args(), " ")
	}
	os.Exit(runOnce(g, src, *strict))
}

// initDisplay configures pterm's prefixes, matching the reference
// material's console setup.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  "  Warn",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
}

// loadGrammar picks the EBNF or YAML importer by file extension.
func loadGrammar(path string) (*grammar.Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cmd/gram: %w", err)
	}
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return serial.Decode(name, data)
	default:
		return ebnf.Parse(name, string(data))
	}
}

// runOnce parses src against g's start rule and prints the result,
// returning the process exit code.
func runOnce(g *grammar.Grammar, src string, strict bool) int {
	p, err := parser.ParseStart(g, src)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 1
	}
	if p == nil {
		pterm.Error.Println("no match")
		return 1
	}
	printTree(p.Token)
	for _, d := range p.Diags {
		pterm.Warning.Println(d.String())
	}
	if strict && len(p.Diags) > 0 {
		return 1
	}
	return 0
}

// printTree renders tk with pterm's tree widget, via the same
// leveled-list construction the reference material uses for its "tree"
// command, walking token.Token's children instead of a TeREx s-expr.
func printTree(tk *token.Token) {
	ll := leveledToken(tk, pterm.LeveledList{}, 0)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledToken(tk *token.Token, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: tokenLabel(tk)})
	for _, c := range tk.Children {
		ll = leveledToken(c, ll, level+1)
	}
	return ll
}

func tokenLabel(tk *token.Token) string {
	label := tk.Span.String()
	if tk.HasGram() {
		label = tk.Gram + " " + label
	}
	if len(tk.Tags) > 0 {
		label += " #" + strings.Join(tk.Tags, ",")
	}
	return label
}

// runREPL drops into an interactive loop, re-parsing each line against g.
func runREPL(g *grammar.Grammar) {
	rl, err := readline.New("gram> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer rl.Close()
	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on <ctrl>D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runOnce(g, line, false)
	}
	fmt.Println("Good bye!")
}
