package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/hcasse/ltgen/server/dao"
	"github.com/hcasse/ltgen/server/middle"
	"github.com/hcasse/ltgen/server/result"
	"github.com/hcasse/ltgen/server/serr"
	"github.com/hcasse/ltgen/server/tunas"
	"github.com/google/uuid"
)

// HTTPGetGrammars returns a HandlerFunc that lists every grammar saved by the
// logged-in user.
func (api API) HTTPGetGrammars() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epGetGrammars)
}

func (api API) epGetGrammars(req *http.Request) result.Result {
	user := req.Context().Value(middle.AuthUser).(dao.User)

	grammars, err := api.Backend.ListGrammars(req.Context(), user.ID)
	if err != nil {
		return result.InternalServerError(err.Error())
	}

	resp := make([]GrammarModel, len(grammars))
	for i := range grammars {
		resp[i] = grammarToModel(grammars[i])
	}

	return result.OK(resp, "user '%s' listed %d grammar(s)", user.Username, len(resp))
}

// HTTPCreateGrammar returns a HandlerFunc that saves a new grammar under the
// logged-in user's account.
func (api API) HTTPCreateGrammar() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epCreateGrammar)
}

func (api API) epCreateGrammar(req *http.Request) result.Result {
	user := req.Context().Value(middle.AuthUser).(dao.User)

	var body GrammarModel
	if err := parseJSON(req, &body); err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}

	g, err := api.Backend.SaveGrammar(req.Context(), user.ID, uuid.Nil, body.Name, body.Text)
	if err != nil {
		return grammarSaveErr(err)
	}

	return result.Created(grammarToModel(g), "user '%s' saved grammar '%s'", user.Username, g.Name)
}

// HTTPGetGrammar returns a HandlerFunc that retrieves one grammar owned by
// the logged-in user.
func (api API) HTTPGetGrammar() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epGetGrammar)
}

func (api API) epGetGrammar(req *http.Request) result.Result {
	id := requireIDParam(req)
	user := req.Context().Value(middle.AuthUser).(dao.User)

	g, err := api.Backend.GetGrammar(req.Context(), user.ID, id)
	if err != nil {
		return grammarSaveErr(err)
	}

	return result.OK(grammarToModel(g), "user '%s' got grammar '%s'", user.Username, g.Name)
}

// HTTPAnalyzeGrammar returns a HandlerFunc that runs LL(k) conflict analysis
// (and, if a word is given, recognition) over a saved grammar.
func (api API) HTTPAnalyzeGrammar() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epAnalyzeGrammar)
}

func (api API) epAnalyzeGrammar(req *http.Request) result.Result {
	id := requireIDParam(req)
	user := req.Context().Value(middle.AuthUser).(dao.User)

	analyzeReq := AnalyzeRequest{K: 1}
	if err := parseJSON(req, &analyzeReq); err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}

	analysis, err := api.Backend.Analyze(req.Context(), user.ID, id, tunas.AnalysisRequest{
		K:         analyzeReq.K,
		First:     analyzeReq.First,
		Follow:    analyzeReq.Follow,
		Lookahead: analyzeReq.Lookahead,
		LL:        analyzeReq.LL,
		Words:     analyzeReq.Words,
	})
	if err != nil {
		return grammarSaveErr(err)
	}

	resp := AnalyzeResponse{
		K:     analysis.K,
		IsLL:  analysis.IsLL,
		Table: analysis.TableText,
	}
	for _, s := range analysis.First {
		resp.First = append(resp.First, SymbolSetModel{Symbol: string(s.Symbol), Set: s.Set})
	}
	for _, s := range analysis.Follow {
		resp.Follow = append(resp.Follow, SymbolSetModel{Symbol: string(s.Symbol), Set: s.Set})
	}
	for _, c := range analysis.Conflicts {
		resp.Conflicts = append(resp.Conflicts, ConflictModel{
			RuleA:   c.RuleA,
			RuleB:   c.RuleB,
			Overlap: c.Overlap.String(),
		})
	}
	for _, w := range analysis.Words {
		resp.Words = append(resp.Words, WordResultModel{
			Word:         w.Word,
			Log:          w.Log,
			Accepted:     w.Accepted,
			ParseTreeDot: w.ParseTreeDot,
		})
	}

	return result.OK(resp, "user '%s' analyzed grammar at k=%d", user.Username, analysis.K)
}

func grammarToModel(g dao.Grammar) GrammarModel {
	return GrammarModel{
		URI:      PathPrefix + "/grammars/" + g.ID.String(),
		ID:       g.ID.String(),
		Name:     g.Name,
		Text:     g.Text,
		Created:  g.Created.Format(time.RFC3339),
		Modified: g.Modified.Format(time.RFC3339),
	}
}

func grammarSaveErr(err error) result.Result {
	if errors.Is(err, serr.ErrNotFound) {
		return result.NotFound()
	} else if errors.Is(err, serr.ErrPermissions) {
		return result.Forbidden(err.Error())
	} else if errors.Is(err, serr.ErrBadArgument) {
		return result.BadRequest(err.Error(), err.Error())
	}
	return result.InternalServerError(err.Error())
}
