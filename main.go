// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"gopkg.microglot.org/combine.go/exc"
	"gopkg.microglot.org/combine.go/grammar"
	"gopkg.microglot.org/combine.go/iter"
	"gopkg.microglot.org/combine.go/parse"
	"gopkg.microglot.org/combine.go/token"
)

type opts struct {
	Rule       string
	DumpTokens bool
	PunctsOnly bool
	DumpTree   bool
	Render     bool
}

func main() {
	op := &opts{}
	flags := pflag.NewFlagSet("combinec", pflag.PanicOnError)
	flags.StringVar(&op.Rule, "rule", "tokens", "Grammar rule to parse with: tokens or statics.")
	flags.BoolVar(&op.DumpTokens, "dump-tokens", false, "Output the flattened token stream after parsing")
	flags.BoolVar(&op.PunctsOnly, "puncts-only", false, "Restrict --dump-tokens output to punctuation tokens")
	flags.BoolVar(&op.DumpTree, "dump-tree", false, "Output the parse tree after parsing")
	flags.BoolVar(&op.Render, "render", false, "Re-emit the parsed input as source text")
	_ = flags.Parse(os.Args[1:])
	targets := flags.Args()

	exitCode := 0
	for _, target := range targets {
		if err := run(op, target); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func run(op *opts, target string) error {
	b, err := os.ReadFile(target)
	if err != nil {
		return exc.Wrap(exc.Location{}, exc.CodeFileNotFound, err)
	}
	input := string(b)

	switch op.Rule {
	case "tokens":
		trees, errParse := parse.Parse(input, grammar.TokenTrees, "token trees")
		if errParse != nil {
			return errParse
		}
		emit(op, trees)
	case "statics":
		items, errParse := parse.Parse(input, grammar.Statics, "static items")
		if errParse != nil {
			return errParse
		}
		for _, item := range items {
			visibility := ""
			if item.Public {
				visibility = "pub "
			}
			fmt.Printf("%sstatic ref %s: %s = %s;\n", visibility, item.Name.Name, token.Print(item.Type), token.Print(item.Init))
			if op.DumpTokens || op.DumpTree {
				emit(op, append(append([]token.Tree{}, item.Type...), item.Init...))
			}
		}
	default:
		return exc.New(exc.Location{}, exc.CodeUnknownRule, fmt.Sprintf("unknown rule %q", op.Rule))
	}
	return nil
}

func emit(op *opts, trees []token.Tree) {
	ctx := context.Background()
	if op.DumpTokens {
		stream := token.Stream(trees)
		if op.PunctsOnly {
			stream = iter.NewIteratorFilter(stream, iter.FilterFunc[token.Tree](func(ctx context.Context, t token.Tree) bool {
				_, ok := t.(token.Punct)
				return ok
			}))
		}
		for t := stream.Next(ctx); t.IsPresent(); t = stream.Next(ctx) {
			fmt.Println(t.Value().String())
		}
	}
	if op.DumpTree {
		fmt.Print(token.Format(trees))
	}
	if op.Render {
		fmt.Println(token.Print(trees))
	}
}
