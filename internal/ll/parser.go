package ll

import (
	"fmt"

	"github.com/hcasse/ltgen/internal/grammar"
)

// ActionKind tags the Action variant produced by each recognizer step, per
// spec.md §9's explicit direction to use a tagged union rather than
// overloading an integer with sentinel values.
type ActionKind int

const (
	// ActionInit is the Parser's action before any Step has been taken.
	ActionInit ActionKind = iota
	// ActionExpand means a production was just applied; Rule names which one.
	ActionExpand
	// ActionPop means a terminal was just matched and popped; Symbol names it.
	ActionPop
	// ActionAccept is a terminal state: the whole input was consumed.
	ActionAccept
	// ActionError is a terminal, absorbing state.
	ActionError
)

// Action is the result of the most recent Step: a rule index that was just
// expanded, a terminal symbol that was just popped/matched, ACCEPT, ERROR,
// or the initial value.
type Action struct {
	Kind   ActionKind
	Rule   int
	Symbol grammar.Symbol
}

// String renders an Action the way spec.md §6 requires: "error", "accept",
// "expand (n)", or "pop <symbol>".
func (a Action) String() string {
	switch a.Kind {
	case ActionError:
		return "error"
	case ActionAccept:
		return "accept"
	case ActionExpand:
		return fmt.Sprintf("expand (%d)", a.Rule)
	case ActionPop:
		return fmt.Sprintf("pop %s", a.Symbol)
	default:
		return ""
	}
}

// Observer watches a Parser's progress. Implementations must not mutate the
// parser they are given; they may only read Stack, Buffer, and Action.
type Observer interface {
	// OnStart is called once, immediately after the parser is constructed.
	OnStart(p *Parser)
	// OnNext is called after every Step, in the order Step was invoked.
	OnNext(p *Parser)
}

// Parser is the LL(k) pushdown recognizer: a grammar, depth, table, and a
// mutable (stack, buffer) pair driven one Step at a time (spec.md §4.7).
type Parser struct {
	G     *grammar.Grammar
	K     int
	Table *Table

	Stack  grammar.Word
	Buffer grammar.Word
	Action Action

	observers []Observer
}

// NewParser initializes a recognizer over input word w using the given
// table, and notifies every observer's OnStart before returning.
//
//	buffer := w . $^k
//	stack  := $^k . top
func NewParser(table *Table, w grammar.Word, observers ...Observer) *Parser {
	k := table.K
	dollars := grammar.NewWord(grammar.EndMarker).Repeat(k)

	p := &Parser{
		G:         table.G,
		K:         k,
		Table:     table,
		Buffer:    w.Concat(dollars),
		Stack:     dollars.Concat(grammar.NewWord(table.G.Top())),
		Action:    Action{Kind: ActionInit},
		observers: observers,
	}

	for _, o := range observers {
		o.OnStart(p)
	}
	return p
}

// IsEnded reports whether the parser has reached ACCEPT or ERROR.
func (p *Parser) IsEnded() bool {
	return p.Action.Kind == ActionAccept || p.Action.Kind == ActionError
}

// Step advances the recognizer by exactly one action, per spec.md §4.7:
//
//  1. If already ended, do nothing (idempotent).
//  2. If the stack is empty: ACCEPT if the buffer is also empty, else ERROR.
//  3. Else compare the stack top to the buffer head: match and pop/advance
//     on equality; otherwise consult the table and either expand or ERROR.
//
// Every observer's OnNext is called, in order, after the step is applied.
func (p *Parser) Step() {
	if p.IsEnded() {
		return
	}

	switch {
	case p.Stack.IsEmpty():
		if p.Buffer.IsEmpty() {
			p.Action = Action{Kind: ActionAccept}
		} else {
			p.Action = Action{Kind: ActionError}
		}

	default:
		top := p.Stack.At(p.Stack.Len() - 1)
		next := p.Buffer.Head()

		if top == next {
			p.Action = Action{Kind: ActionPop, Symbol: top}
			p.Stack = p.Stack.Slice(0, p.Stack.Len()-1)
			p.Buffer = p.Buffer.Tail()
		} else {
			la := p.Buffer.Prefix(p.K)
			n := p.Table.At(top, la)
			if n == ErrorRule {
				p.Action = Action{Kind: ActionError}
			} else {
				p.Action = Action{Kind: ActionExpand, Rule: n}
				p.Stack = p.Stack.Slice(0, p.Stack.Len()-1)
				rhs := p.G.Rule(n).Body.Reverse()
				p.Stack = p.Stack.Concat(rhs)
			}
		}
	}

	for _, o := range p.observers {
		o.OnNext(p)
	}
}

// Run steps the parser until it ends, a convenience for drivers that don't
// need to inspect intermediate state beyond what observers already capture.
func (p *Parser) Run() Action {
	for !p.IsEnded() {
		p.Step()
	}
	return p.Action
}
