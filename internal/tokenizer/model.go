package tokenizer

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// numBaseTokens is the number of reserved single-byte tokens. IDs below
// this value always denote the raw byte of the same value.
const numBaseTokens = 256

// MergeRule records one learned merge: Left followed by Right rewrites
// to NewID. Rules are stored in training order, so the position of a
// rule is its rank and equals NewID-256 by construction.
type MergeRule struct {
	Left  int32
	Right int32
	NewID int32
}

// model holds the learned merge rule table and the vocabulary derived
// from it. It is populated once by Train or Load and read-only for the
// rest of the tokenizer's lifetime.
type model struct {
	rules []MergeRule
	ranks map[Pair]int32 // pair -> NewID; lower means learned earlier
	vocab map[int32][]byte
}

func newModel() model {
	return model{
		ranks: make(map[Pair]int32),
		vocab: baseVocab(),
	}
}

// baseVocab returns the 256 single-byte identity entries.
func baseVocab() map[int32][]byte {
	vocab := make(map[int32][]byte, numBaseTokens)
	for i := 0; i < numBaseTokens; i++ {
		vocab[int32(i)] = []byte{byte(i)}
	}
	return vocab
}

// BuildVocab derives the full vocabulary from an ordered merge rule
// table. Rules must be in training order: a rule may only reference
// base bytes or tokens introduced by earlier rules.
func BuildVocab(rules []MergeRule) (map[int32][]byte, error) {
	vocab := baseVocab()
	for _, r := range rules {
		left, ok := vocab[r.Left]
		if !ok {
			return nil, fmt.Errorf("merge rule for token %d references undefined token %d", r.NewID, r.Left)
		}
		right, ok := vocab[r.Right]
		if !ok {
			return nil, fmt.Errorf("merge rule for token %d references undefined token %d", r.NewID, r.Right)
		}
		vocab[r.NewID] = concat(left, right)
	}
	return vocab, nil
}

// record appends a learned rule and extends the vocabulary.
func (m *model) record(p Pair, newID int32) {
	m.rules = append(m.rules, MergeRule{Left: p.Left, Right: p.Right, NewID: newID})
	m.ranks[p] = newID
	m.vocab[newID] = concat(m.vocab[p.Left], m.vocab[p.Right])
}

// VocabSize returns the total vocabulary size: the 256 base byte
// tokens plus one token per learned merge.
func (m *model) VocabSize() int {
	return numBaseTokens + len(m.rules)
}

// NumMerges returns the number of learned merge rules.
func (m *model) NumMerges() int {
	return len(m.rules)
}

// Rules returns the learned merge rules in training order.
func (m *model) Rules() []MergeRule {
	return append([]MergeRule(nil), m.rules...)
}

// Decode converts token IDs back to text. The byte sequences of the
// tokens are concatenated and interpreted as UTF-8; malformed byte
// runs are replaced with U+FFFD, so decoding never fails on byte
// content, only on IDs absent from the vocabulary.
func (m *model) Decode(tokens []int32) (string, error) {
	var buf []byte
	for _, id := range tokens {
		b, ok := m.vocab[id]
		if !ok {
			return "", fmt.Errorf("%w: %d", ErrUnknownToken, id)
		}
		buf = append(buf, b...)
	}
	return strings.ToValidUTF8(string(buf), "�"), nil
}

// MergeableRank is one vocabulary entry: the token's byte sequence and
// its ID, which doubles as the merge rank for learned tokens.
type MergeableRank struct {
	Bytes []byte
	ID    int32
}

// MergeableRanks returns every vocabulary entry in ID order: the 256
// base bytes followed by one entry per merge in training order.
func (m *model) MergeableRanks() []MergeableRank {
	ranks := make([]MergeableRank, 0, numBaseTokens+len(m.rules))
	for i := 0; i < numBaseTokens; i++ {
		ranks = append(ranks, MergeableRank{Bytes: []byte{byte(i)}, ID: int32(i)})
	}
	for _, r := range m.rules {
		ranks = append(ranks, MergeableRank{
			Bytes: append([]byte(nil), m.vocab[r.NewID]...),
			ID:    r.NewID,
		})
	}
	return ranks
}

// Save writes the merge rules to <prefix>.model, one rule per line as
// "<left> <right> <new>" in training order, and a human-readable
// vocabulary listing to <prefix>.vocab. Only the model file is needed
// to reload the tokenizer; the vocab file is for inspection.
func (m *model) Save(prefix string) error {
	modelFile, err := os.Create(prefix + ".model")
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}
	defer modelFile.Close()

	w := bufio.NewWriter(modelFile)
	for _, r := range m.rules {
		fmt.Fprintf(w, "%d %d %d\n", r.Left, r.Right, r.NewID)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write model file: %w", err)
	}

	vocabFile, err := os.Create(prefix + ".vocab")
	if err != nil {
		return fmt.Errorf("failed to create vocab file: %w", err)
	}
	defer vocabFile.Close()

	w = bufio.NewWriter(vocabFile)
	for _, entry := range m.MergeableRanks() {
		fmt.Fprintf(w, "%d %s\n", entry.ID, printable(entry.Bytes))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write vocab file: %w", err)
	}
	return nil
}

// Load reads an ordered merge rule table from a model file written by
// Save and rebuilds the vocabulary. A loaded tokenizer reproduces the
// exact encode/decode behavior of the instance that saved it. Any
// non-empty line that does not parse as three integers fails the load.
func (m *model) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read model file: %w", err)
	}

	var rules []MergeRule
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r, err := parseRule(line)
		if err != nil {
			return fmt.Errorf("%w: line %d: %q", ErrCorruptModel, i+1, line)
		}
		rules = append(rules, r)
	}

	vocab, err := BuildVocab(rules)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptModel, err)
	}

	m.rules = rules
	m.vocab = vocab
	m.ranks = make(map[Pair]int32, len(rules))
	for _, r := range rules {
		m.ranks[Pair{r.Left, r.Right}] = r.NewID
	}
	return nil
}

func parseRule(line string) (MergeRule, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return MergeRule{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	var ids [3]int32
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return MergeRule{}, err
		}
		ids[i] = int32(v)
	}
	return MergeRule{Left: ids[0], Right: ids[1], NewID: ids[2]}, nil
}

// concat concatenates two byte slices into a new slice.
func concat(a, b []byte) []byte {
	c := make([]byte, 0, len(a)+len(b))
	c = append(c, a...)
	return append(c, b...)
}

// printable renders token bytes for the vocab file, escaping control
// and non-ASCII bytes.
func printable(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 2)
	for _, c := range b {
		switch {
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '\\':
			sb.WriteString(`\\`)
		case c >= 32 && c < 127:
			sb.WriteByte(c)
		default:
			fmt.Fprintf(&sb, `\x%02x`, c)
		}
	}
	return sb.String()
}
