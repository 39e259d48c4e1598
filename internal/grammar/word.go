package grammar

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Symbol is an atomic grammar element: either a terminal (token) or a
// non-terminal (name). Equality is structural, since Symbol is just a
// defined string type.
type Symbol string

// EndMarker is the reserved end-of-input terminal, written "$" in rendered
// output. It is considered a terminal by convention even when it never
// appears on the right-hand side of a user rule.
const EndMarker Symbol = "$"

// augmentedStartBase is the un-primed form of the augmented axiom.
const augmentedStartBase Symbol = "S'"

// wordSep is an internal separator used only to build a comparable map key
// for a Word; it is never shown to a user and is chosen to be a byte that
// cannot appear in a whitespace-delimited symbol.
const wordSep = "\x1f"

// Word is an immutable, ordered sequence of symbols. The zero Word is the
// empty word, epsilon.
type Word struct {
	syms []Symbol
}

// Epsilon is the empty word. It is equal only to itself.
var Epsilon = Word{}

// NewWord builds a Word from the given symbols, in order.
func NewWord(syms ...Symbol) Word {
	if len(syms) == 0 {
		return Epsilon
	}
	cp := make([]Symbol, len(syms))
	copy(cp, syms)
	return Word{syms: cp}
}

// Len returns the number of symbols in w.
func (w Word) Len() int {
	return len(w.syms)
}

// IsEmpty returns whether w is epsilon.
func (w Word) IsEmpty() bool {
	return len(w.syms) == 0
}

// Symbols returns a copy of the symbol sequence making up w.
func (w Word) Symbols() []Symbol {
	cp := make([]Symbol, len(w.syms))
	copy(cp, w.syms)
	return cp
}

// At returns the symbol at position i.
func (w Word) At(i int) Symbol {
	return w.syms[i]
}

// Head returns the first symbol of w. Calling it on an empty word panics, as
// the caller is expected to have checked IsEmpty first.
func (w Word) Head() Symbol {
	return w.syms[0]
}

// Tail returns w with its first symbol removed. Tail of an empty word is
// itself.
func (w Word) Tail() Word {
	if w.IsEmpty() {
		return w
	}
	return w.Slice(1, w.Len())
}

// Slice returns the sub-word w[i:j].
func (w Word) Slice(i, j int) Word {
	if i >= j {
		return Epsilon
	}
	return NewWord(w.syms[i:j]...)
}

// Prefix returns the first min(len(w), k) symbols of w.
func (w Word) Prefix(k int) Word {
	if k < 0 {
		k = 0
	}
	if k >= w.Len() {
		return w
	}
	return w.Slice(0, k)
}

// Concat returns w . other, w followed by other.
func (w Word) Concat(other Word) Word {
	if w.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return w
	}
	all := make([]Symbol, 0, w.Len()+other.Len())
	all = append(all, w.syms...)
	all = append(all, other.syms...)
	return Word{syms: all}
}

// IndexOf returns the position of the first occurrence of sym in w, or
// w.Len() if sym does not occur.
func (w Word) IndexOf(sym Symbol) int {
	for i, s := range w.syms {
		if s == sym {
			return i
		}
	}
	return w.Len()
}

// Reverse returns the symbols of w in opposite order.
func (w Word) Reverse() Word {
	if w.Len() < 2 {
		return w
	}
	rev := make([]Symbol, w.Len())
	for i, s := range w.syms {
		rev[len(rev)-1-i] = s
	}
	return Word{syms: rev}
}

// Repeat returns w concatenated with itself k times (w repeated 0 times is
// epsilon).
func (w Word) Repeat(k int) Word {
	if k <= 0 || w.IsEmpty() {
		return Epsilon
	}
	all := make([]Symbol, 0, w.Len()*k)
	for i := 0; i < k; i++ {
		all = append(all, w.syms...)
	}
	return Word{syms: all}
}

// Equal returns whether w and other contain the same symbols in the same
// order.
func (w Word) Equal(other Word) bool {
	if w.Len() != other.Len() {
		return false
	}
	for i := range w.syms {
		if w.syms[i] != other.syms[i] {
			return false
		}
	}
	return true
}

// key returns a canonical string encoding of w suitable for use as a map
// key; it is not meant for display.
func (w Word) key() string {
	if w.IsEmpty() {
		return ""
	}
	strs := make([]string, len(w.syms))
	for i, s := range w.syms {
		strs[i] = string(s)
	}
	return strings.Join(strs, wordSep)
}

// String renders w the way a human should see it: symbols space-joined, with
// the empty word rendered as "ε".
func (w Word) String() string {
	if w.IsEmpty() {
		return "ε"
	}
	strs := make([]string, len(w.syms))
	for i, s := range w.syms {
		strs[i] = string(s)
	}
	return strings.Join(strs, " ")
}

// WordSet is an unordered collection of words with unique membership and
// union/intersection set algebra, modeled on the teacher's
// internal/util.SVSet[V] (a string-keyed map wrapping a richer element).
type WordSet struct {
	m map[string]Word
}

// NewWordSet builds a WordSet containing the given words.
func NewWordSet(ws ...Word) WordSet {
	s := WordSet{m: make(map[string]Word, len(ws))}
	for _, w := range ws {
		s.Add(w)
	}
	return s
}

// Add adds w to the set. No effect if already present.
func (s WordSet) Add(w Word) {
	s.m[w.key()] = w
}

// AddAll adds every word of o to s.
func (s WordSet) AddAll(o WordSet) {
	for k, w := range o.m {
		s.m[k] = w
	}
}

// Has returns whether w is a member of the set.
func (s WordSet) Has(w Word) bool {
	_, ok := s.m[w.key()]
	return ok
}

// Len returns the number of words in the set.
func (s WordSet) Len() int {
	return len(s.m)
}

// Elements returns the words of s, in no particular order.
func (s WordSet) Elements() []Word {
	elems := make([]Word, 0, len(s.m))
	for _, w := range s.m {
		elems = append(elems, w)
	}
	return elems
}

// Union returns a new WordSet containing every word in s or o.
func (s WordSet) Union(o WordSet) WordSet {
	newSet := NewWordSet()
	newSet.AddAll(s)
	newSet.AddAll(o)
	return newSet
}

// Intersect returns a new WordSet containing only words present in both s
// and o.
func (s WordSet) Intersect(o WordSet) WordSet {
	newSet := NewWordSet()
	for k, w := range s.m {
		if _, ok := o.m[k]; ok {
			newSet.Add(w)
		}
	}
	return newSet
}

// Equal returns whether s and o contain the same words.
func (s WordSet) Equal(o WordSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for k := range s.m {
		if _, ok := o.m[k]; !ok {
			return false
		}
	}
	return true
}

// sortedRenderings returns the rendered form of every word in s, sorted in
// locale-stable lexicographic order. A collator is used in place of plain
// sort.Strings so that sorting is stable across the Unicode symbol ranges a
// grammar author might use for non-terminal/terminal names.
func (s WordSet) sortedRenderings() []string {
	out := make([]string, 0, len(s.m))
	for _, w := range s.m {
		out = append(out, w.String())
	}
	col := collate.New(language.Und)
	sort.Slice(out, func(i, j int) bool {
		return col.CompareString(out[i], out[j]) < 0
	})
	return out
}

// String renders s the way a human should see it: "{ w1, w2, ... }" with
// words sorted lexicographically by their rendering.
func (s WordSet) String() string {
	rendered := s.sortedRenderings()
	if len(rendered) == 0 {
		return "{ }"
	}
	return "{ " + strings.Join(rendered, ", ") + " }"
}
