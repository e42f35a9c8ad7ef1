package analysis

import (
	"sort"
	"strings"

	"github.com/SeamusWaldron/cube"
)

// NGram represents a repeated turn sequence.
type NGram struct {
	N           int               `json:"n"`
	Sequence    []string          `json:"sequence"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// String returns the sequence in notation.
func (g NGram) String() string {
	return strings.Join(g.Sequence, " ")
}

// NGramOccurrence represents where an n-gram was found.
type NGramOccurrence struct {
	StartIndex int   `json:"start_index"`
	TsMs       int64 `json:"ts_ms"`
}

// NGramReport contains the results of n-gram mining.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"` // Keyed by n
}

// maxOccurrences caps the sample positions kept per n-gram.
const maxOccurrences = 10

// RollingHash implements Rabin-Karp rolling hash for efficient n-gram detection.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint64
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   1_000_003, // Prime base, larger than any token count we expect
		n:      n,
		window: make([]uint64, 0, n),
	}

	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Roll adds a token, dropping the oldest once the window is full.
func (rh *RollingHash) Roll(token uint64) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + token
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-old*rh.pow)*rh.base + token

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint64 {
	return append([]uint64(nil), rh.window...)
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// tokenize interns each canonical turn as a small integer. Turn sets are
// unbounded on big cubes, so ids are assigned on first sight.
func tokenize(entries []cube.HistoryEntry) ([]uint64, []string) {
	ids := make(map[string]uint64)
	var names []string
	tokens := make([]uint64, len(entries))

	for i, e := range entries {
		name := e.Turn.String()
		id, ok := ids[name]
		if !ok {
			id = uint64(len(names)) + 1
			ids[name] = id
			names = append(names, name)
		}
		tokens[i] = id
	}
	return tokens, names
}

type ngramEntry struct {
	tokens      []uint64
	count       int
	occurrences []NGramOccurrence
}

// MineNGrams finds the top-K most frequent repeated n-grams for each n in
// [minN, maxN]. Ties keep the sequence that appeared first.
func MineNGrams(entries []cube.HistoryEntry, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	if minN < 1 || len(entries) < minN {
		return report
	}

	tokens, names := tokenize(entries)

	for n := minN; n <= maxN && n <= len(tokens); n++ {
		ngrams := mineNGramsForN(tokens, names, entries, n, topK)
		if len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

func mineNGramsForN(tokens []uint64, names []string, entries []cube.HistoryEntry, n, topK int) []NGram {
	counts := make(map[uint64][]*ngramEntry)
	var order []*ngramEntry
	rh := NewRollingHash(n)

	for i, token := range tokens {
		rh.Roll(token)
		if !rh.Ready() {
			continue
		}

		start := i - n + 1
		occ := NGramOccurrence{
			StartIndex: start,
			TsMs:       entries[start].Time.UnixMilli(),
		}

		hash := rh.Hash()
		var found *ngramEntry
		for _, e := range counts[hash] {
			// Same hash is not proof of the same sequence.
			if tokensEqual(e.tokens, rh.window) {
				found = e
				break
			}
		}

		if found == nil {
			found = &ngramEntry{tokens: rh.Window()}
			counts[hash] = append(counts[hash], found)
			order = append(order, found)
		}
		found.count++
		if len(found.occurrences) < maxOccurrences {
			found.occurrences = append(found.occurrences, occ)
		}
	}

	var repeated []*ngramEntry
	for _, e := range order {
		if e.count >= 2 {
			repeated = append(repeated, e)
		}
	}

	sort.SliceStable(repeated, func(i, j int) bool {
		return repeated[i].count > repeated[j].count
	})

	if len(repeated) > topK {
		repeated = repeated[:topK]
	}

	result := make([]NGram, len(repeated))
	for i, e := range repeated {
		sequence := make([]string, len(e.tokens))
		for j, token := range e.tokens {
			sequence[j] = names[token-1]
		}
		result[i] = NGram{
			N:           n,
			Sequence:    sequence,
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}

	return result
}

func tokensEqual(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
