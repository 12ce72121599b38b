/*
Package gram is a grammar-driven parsing toolbox.

It is built around an algebraic representation of context-free grammars
(package grammar) and an iterative, explicit-stack recursive-descent parser
(package parser) that produces a labeled token tree (package token) plus
diagnostics for partial matches (package diag). The parser is agnostic to
the kind of terminal matcher used to recognize leaves; package text supplies
literal/regex matchers over strings, package lextok supplies matchers over
a pre-lexed token stream.

Package structure:

■ grammar: the node algebra (Seq, Alt, Rep, Term, NonTerm, Tagged, Meta)
and the Grammar container (rule lookup, merge, rename).

■ text / lextok: terminal matcher implementations.

■ token: the parse-tree produced by a successful (or partial) parse, plus
traversal helpers.

■ diag: diagnostics emitted for partially-matched sequences and repetitions.

■ parser: the trampoline that drives everything above.

■ build: a fluent Go DSL for constructing grammars programmatically.

■ ebnf: a textual importer/exporter for grammars.

■ serial: a YAML encoding for grammars.

■ cmd/gram: a thin CLI wrapping the above.

The base package contains data types shared throughout: Span.
*/
package gram
