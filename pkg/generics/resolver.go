/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package generics

import (
	"sort"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/s4/pkg/classes"
	imetrics "github.com/voedger/s4/pkg/metrics"
)

// Runtime class of dispatch argument: omitted argument or reported class chain.
type token struct {
	missing bool
	chain   []string
}

func missingToken() token { return token{missing: true} }

func chainToken(chain ...string) token { return token{chain: chain} }

// Class name shown in messages and selections.
func (t token) String() string {
	switch {
	case t.missing:
		return classes.ClassName_MISSING
	case len(t.chain) == 0:
		return classes.ClassName_ANY
	}
	return t.chain[0]
}

func tokensKey(tt []token) string {
	b := strings.Builder{}
	for i, t := range tt {
		if i > 0 {
			b.WriteString(keyArgSep)
		}
		if t.missing {
			b.WriteString(keyChainSep)
			b.WriteString(classes.ClassName_MISSING)
			continue
		}
		b.WriteString(strings.Join(t.chain, keyChainSep))
	}
	return b.String()
}

func tokensClasses(tt []token) []string {
	res := make([]string, len(tt))
	for i, t := range tt {
		res[i] = t.String()
	}
	return res
}

// Applicable method with total distance
type candidate struct {
	method   *method
	distance int
}

// Applicable methods ordered by total distance, then by signature.
type resolution struct {
	candidates []candidate

	// classes from all distance tables used by resolution
	involved []string
}

// Returns resolution for tokens, from cache if possible.
func (r *generics) resolution(g *generic, tokens []token) *resolution {
	key := tokensKey(tokens)
	res, epoch, ok := g.cached(key)
	if ok {
		r.metrics.IncreaseGeneric(imetrics.DispatchCachedTotal, g.name, 1)
		return res
	}

	res = r.resolve(g, tokens)
	g.store(key, res, epoch)
	return res
}

// Computes applicable methods.
//
// For each dispatch position distance table contains class ancestors, MISSING
// for omitted argument and ANY farther than every real ancestor. Method is
// applicable if each selector is in table of its position; total distance is
// the sum of selector distances.
func (r *generics) resolve(g *generic, tokens []token) *resolution {
	tables := make([]classes.Distances, len(tokens))
	involved := make(map[string]bool)
	for i, t := range tokens {
		var d classes.Distances
		if t.missing {
			d = classes.Distances{classes.ClassName_MISSING: 0}
		} else {
			d = r.classes.ChainDistances(t.chain)
		}
		for c := range d {
			involved[c] = true
		}
		tables[i] = d.WithAny()
	}

	res := &resolution{}

	r.mx.RLock()
	for _, m := range g.methods {
		total := 0
		applicable := true
		for i, s := range m.signature {
			d, ok := tables[i][s]
			if !ok {
				applicable = false
				break
			}
			total += d
		}
		if applicable {
			res.candidates = append(res.candidates, candidate{m, total})
		}
	}
	r.mx.RUnlock()

	sort.Slice(res.candidates, func(i, j int) bool {
		ci, cj := res.candidates[i], res.candidates[j]
		if ci.distance != cj.distance {
			return ci.distance < cj.distance
		}
		return lessSignature(ci.method.signature, cj.method.signature)
	})

	res.involved = make([]string, 0, len(involved))
	for c := range involved {
		res.involved = append(res.involved, c)
	}

	if logger.IsTrace() {
		logger.Trace(g, "resolved for", tokensClasses(tokens), "with", len(res.candidates), "candidate(s)")
	}
	return res
}

// Selects method with minimum total distance from candidates not visited yet.
//
// Ties are broken by lexicographically smallest signature; such selection is
// ambiguous and is reported to log, metrics and ambiguity handlers.
// Returns nil if there is no candidates left.
func (r *generics) selectFrom(g *generic, tokens []token, res *resolution, visited map[string]bool) *Selection {
	var (
		first *candidate
		tied  []*method
	)
	for i := range res.candidates {
		c := &res.candidates[i]
		if visited[c.method.key] {
			continue
		}
		if first == nil {
			first = c
			tied = append(tied, c.method)
			continue
		}
		if c.distance != first.distance {
			break
		}
		tied = append(tied, c.method)
	}

	if first == nil {
		return nil
	}

	sel := &Selection{
		generic:  g.name,
		params:   g.signature,
		classes:  tokensClasses(tokens),
		method:   first.method,
		distance: first.distance,
	}

	if len(tied) > 1 {
		w := &AmbiguousDispatchWarning{
			Generic:  g.name,
			Classes:  sel.Classes(),
			Distance: first.distance,
			Chosen:   first.method.Signature(),
		}
		for _, m := range tied {
			w.Candidates = append(w.Candidates, m.Signature())
		}
		sel.warning = w
		r.ambiguous(w)
	}

	return sel
}

func (r *generics) ambiguous(w *AmbiguousDispatchWarning) {
	logger.Warning(w.Error())
	r.metrics.IncreaseGeneric(imetrics.DispatchAmbiguousTotal, w.Generic, 1)

	r.mx.RLock()
	handlers := append([]AmbiguityHandler(nil), r.handlers...)
	r.mx.RUnlock()

	for _, h := range handlers {
		h(w)
	}
}
