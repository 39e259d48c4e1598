package tunas

import (
	"context"
	"errors"
	"strings"

	"github.com/hcasse/ltgen/internal/diag"
	"github.com/hcasse/ltgen/internal/grammar"
	"github.com/hcasse/ltgen/internal/ll"
	"github.com/hcasse/ltgen/internal/render"
	"github.com/hcasse/ltgen/internal/tree"
	"github.com/hcasse/ltgen/server/dao"
	"github.com/hcasse/ltgen/server/serr"
	"github.com/google/uuid"
)

// SymbolSet is the rendered FIRST_k or FOLLOW_k set of one non-terminal.
type SymbolSet struct {
	Symbol grammar.Symbol
	Set    string
}

// WordTrace is the result of running the recognizer over one input word: the
// console log DisplayObserver produced, whether the word was accepted, and
// (if accepted) its parse tree rendered as Graphviz DOT.
type WordTrace struct {
	Word         []string
	Log          string
	Accepted     bool
	ParseTreeDot string
}

// AnalysisRequest selects which parts of the core pipeline Analyze should
// run, mirroring the web UI's analyze form (spec.md SPEC_FULL.md §8): any
// subset of First/Follow/Lookahead/LL may be requested, and any number of
// words may be recognized once a table exists.
type AnalysisRequest struct {
	K         int
	First     bool
	Follow    bool
	Lookahead bool
	LL        bool
	Words     [][]string
}

// AnalysisResult is everything the workbench front end needs to render one
// analysis of a saved grammar.
type AnalysisResult struct {
	K int

	First  []SymbolSet
	Follow []SymbolSet

	Conflicts []ll.Conflict
	IsLL      bool
	TableText string

	Words []WordTrace
}

// SaveGrammar validates text as a parseable grammar and stores it under
// owner's account with the given name. If id is the nil UUID a new grammar is
// created; otherwise the grammar with that ID is overwritten, provided it is
// owned by owner.
//
// The returned error, if non-nil, will match serr.ErrBadArgument if text does
// not parse, serr.ErrPermissions if id names a grammar owned by someone
// else, and serr.ErrDB for unexpected persistence failures.
func (svc Service) SaveGrammar(ctx context.Context, owner uuid.UUID, id uuid.UUID, name, text string) (dao.Grammar, error) {
	if strings.TrimSpace(name) == "" {
		return dao.Grammar{}, serr.New("name cannot be blank", serr.ErrBadArgument)
	}

	if err := validateGrammarText(name, text); err != nil {
		return dao.Grammar{}, err
	}

	if id == uuid.Nil {
		g, err := svc.DB.Grammars().Create(ctx, dao.Grammar{OwnerID: owner, Name: name, Text: text})
		if err != nil {
			return dao.Grammar{}, serr.WrapDB("could not save grammar", err)
		}
		return g, nil
	}

	existing, err := svc.DB.Grammars().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.Grammar{}, serr.New("grammar not found", serr.ErrNotFound)
		}
		return dao.Grammar{}, serr.WrapDB("", err)
	}
	if existing.OwnerID != owner {
		return dao.Grammar{}, serr.New("grammar is owned by another user", serr.ErrPermissions)
	}

	existing.Name = name
	existing.Text = text
	updated, err := svc.DB.Grammars().Update(ctx, id, existing)
	if err != nil {
		return dao.Grammar{}, serr.WrapDB("could not update grammar", err)
	}
	return updated, nil
}

func validateGrammarText(name, text string) error {
	lines := strings.Split(text, "\n")
	_, parseErrs, err := grammar.ParseLines(name, lines)
	if err != nil {
		return serr.New(err.Error(), serr.ErrBadArgument)
	}
	if len(parseErrs) > 0 {
		return serr.New(parseErrs[0].Error(), serr.ErrBadArgument)
	}
	return nil
}

// ListGrammars returns every grammar owned by owner, sorted by name.
func (svc Service) ListGrammars(ctx context.Context, owner uuid.UUID) ([]dao.Grammar, error) {
	grammars, err := svc.DB.Grammars().GetAllByUser(ctx, owner)
	if err != nil {
		return nil, serr.WrapDB("", err)
	}
	return grammars, nil
}

// GetGrammar returns the grammar with the given ID, provided it is owned by
// owner.
func (svc Service) GetGrammar(ctx context.Context, owner, id uuid.UUID) (dao.Grammar, error) {
	g, err := svc.DB.Grammars().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.Grammar{}, serr.New("grammar not found", serr.ErrNotFound)
		}
		return dao.Grammar{}, serr.WrapDB("", err)
	}
	if g.OwnerID != owner {
		return dao.Grammar{}, serr.New("grammar is owned by another user", serr.ErrPermissions)
	}
	return g, nil
}

// DeleteGrammar removes the grammar with the given ID, provided it is owned
// by owner.
func (svc Service) DeleteGrammar(ctx context.Context, owner, id uuid.UUID) error {
	existing, err := svc.GetGrammar(ctx, owner, id)
	if err != nil {
		return err
	}
	if _, err := svc.DB.Grammars().Delete(ctx, existing.ID); err != nil {
		return serr.WrapDB("could not delete grammar", err)
	}
	return nil
}

// Analyze loads the grammar with the given ID (provided it is owned by
// owner) and runs whichever subset of FIRST_k/FOLLOW_k/lookahead/LL(k)
// analysis req asks for. If req.LL analysis finds the grammar is LL(k), a
// table is built and every word in req.Words is recognized against it, each
// yielding its own step-by-step trace and, on acceptance, a parse tree.
//
// The returned error matches serr.ErrBadArgument if k is less than 1 or the
// stored grammar text no longer parses.
func (svc Service) Analyze(ctx context.Context, owner, id uuid.UUID, req AnalysisRequest) (AnalysisResult, error) {
	if req.K < 1 {
		return AnalysisResult{}, serr.New("k must be at least 1", serr.ErrBadArgument)
	}

	saved, err := svc.GetGrammar(ctx, owner, id)
	if err != nil {
		return AnalysisResult{}, err
	}

	g, parseErrs, err := grammar.ParseText(saved.Name, saved.Text)
	if err != nil {
		return AnalysisResult{}, serr.New(err.Error(), serr.ErrBadArgument)
	}
	if len(parseErrs) > 0 {
		return AnalysisResult{}, serr.New(parseErrs[0].Error(), serr.ErrBadArgument)
	}

	result := AnalysisResult{K: req.K}

	if req.First {
		for _, X := range g.Names() {
			result.First = append(result.First, SymbolSet{
				Symbol: X,
				Set:    g.First(req.K, grammar.NewWord(X)).String(),
			})
		}
	}
	if req.Follow {
		for _, X := range g.Names() {
			result.Follow = append(result.Follow, SymbolSet{
				Symbol: X,
				Set:    g.Follow(req.K, X).String(),
			})
		}
	}

	if !req.Lookahead && !req.LL && len(req.Words) == 0 {
		return result, nil
	}

	report := ll.Analyze(req.K, g)
	result.Conflicts = report.Conflicts
	result.IsLL = report.IsLL()

	if !report.IsLL() {
		return result, nil
	}

	table := ll.NewTable(g, report)
	result.TableText = render.Table(table)

	for _, word := range req.Words {
		syms := make([]grammar.Symbol, len(word))
		for i, s := range word {
			syms[i] = grammar.Symbol(s)
		}

		buf := &diag.Buffer{}
		display := render.NewDisplayObserver(buf)
		treeObs := tree.NewObserver()

		parser := ll.NewParser(table, grammar.NewWord(syms...), display, treeObs)
		action := parser.Run()

		wt := WordTrace{
			Word:     word,
			Log:      buf.String(),
			Accepted: action.Kind == ll.ActionAccept,
		}
		if wt.Accepted {
			wt.ParseTreeDot = render.TreeDot(treeObs.Root)
		}
		result.Words = append(result.Words, wt)
	}

	return result, nil
}
