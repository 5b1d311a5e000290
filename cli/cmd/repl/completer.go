package repl

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/confabulate/confab/expr"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "list", "seed", "clear", "quit"}

// isWordBoundary reports whether the rune delimits a completion word. This
// includes whitespace, the member-access dot, and the argument punctuation
// of the expression grammar.
func isWordBoundary(r rune) bool {
	switch r {
	case '.', ' ', '\t',
		'(', ')', '[', ']', '{', '}',
		'"', ',', ':':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input. The word is empty when the cursor sits on a
// boundary (after a dot, inside parentheses, start of line).
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Walk backward from cursor to find word start.
	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	// Walk forward from cursor to find word end.
	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// parentPath returns the dot-separated prefix path leading up to the current
// word. For input "airline.airl" with the word "airl", the parent path is
// "airline". Returns "" for top-level words.
func parentPath(input string, wordStart int) string {
	prefix := input[:wordStart]
	if !strings.HasSuffix(prefix, ".") {
		return ""
	}

	prefix = strings.TrimRight(prefix, ".")

	// Walk backward over the contiguous member-access chain.
	pos := len(prefix)

	for pos > 0 {
		r, size := utf8.DecodeLastRuneInString(prefix[:pos])
		if r != '.' && isWordBoundary(r) {
			break
		}

		pos -= size
	}

	return prefix[pos:]
}

// childCandidates returns the names completing the given parent path within
// the namespace tree. An empty parent yields the top-level module names.
func childCandidates(root expr.Map, parent string) []string {
	node := any(root)

	if parent != "" {
		for _, seg := range strings.Split(parent, ".") {
			child, ok := node.(expr.Map)
			if !ok {
				return nil
			}

			node, ok = child[seg]
			if !ok {
				return nil
			}
		}
	}

	m, ok := node.(expr.Map)
	if !ok {
		return nil
	}

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// isCallable reports whether the named child of parent resolves to an
// invocable node. Used to decorate candidates with a "()" suffix.
func isCallable(root expr.Map, parent, name string) bool {
	candidates := childCandidates(root, parent)
	if !slices.Contains(candidates, name) {
		return false
	}

	node := any(root)

	path := name
	if parent != "" {
		path = parent + "." + name
	}

	for _, seg := range strings.Split(path, ".") {
		child, ok := node.(expr.Map)
		if !ok {
			return false
		}

		node, ok = child[seg]
		if !ok {
			return false
		}
	}

	switch node.(type) {
	case expr.Callable, func(args ...any) (any, error):
		return true
	default:
		return false
	}
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor. It returns the matches ranked best-first, the candidate list, and
// the word boundaries. An empty word at the top level yields no matches so
// the hint line stays visible; an empty word after a dot lists all children
// for browsing.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	candidates []string,
	wordStart, wordEnd int,
) {
	input := m.input.Value()
	cursor := m.input.Position()

	word, ws, we := wordBounds(input, cursor)
	wordStart, wordEnd = ws, we

	if m.mode == modeCtrl {
		if word == "" {
			return nil, nil, wordStart, wordEnd
		}

		candidates = ctrlCommands
	} else {
		parent := parentPath(input, wordStart)
		candidates = childCandidates(m.gen.Namespace(), parent)

		if word == "" {
			if parent == "" || len(candidates) == 0 {
				return nil, nil, wordStart, wordEnd
			}

			matches = make(fuzzy.Matches, len(candidates))
			for i, c := range candidates {
				matches[i] = fuzzy.Match{Str: c, Index: i}
			}

			return matches, candidates, wordStart, wordEnd
		}
	}

	if len(candidates) == 0 {
		return nil, nil, wordStart, wordEnd
	}

	matches = fuzzy.Find(word, candidates)

	return matches, candidates, wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to
// fit within the given terminal width. The selected candidate (when
// tabbing) uses the selected style.
func (m model) renderCandidateBar(width int) string {
	if len(m.matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	parent := parentPath(m.input.Value(), m.wordStart)

	var b strings.Builder

	used := 0

	for i, match := range m.matches {
		selected := m.tabActive && i == m.suggIdx
		rendered := m.renderCandidate(match, parent, selected)
		candidateWidth := lipgloss.Width(rendered)

		entryWidth := candidateWidth
		if i > 0 {
			entryWidth += sepWidth
		}

		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth

		if i == len(m.matches)-1 {
			break
		}
	}

	return b.String()
}

// renderCandidate renders one candidate with matched characters highlighted.
// Callable leaves are displayed with a "()" suffix that is not part of the
// completion text.
func (m model) renderCandidate(
	match fuzzy.Match,
	parent string,
	selected bool,
) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		ch := string(r)
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(ch))
		} else {
			b.WriteString(baseStyle.Render(ch))
		}
	}

	if m.mode == modeEval && isCallable(m.gen.Namespace(), parent, match.Str) {
		b.WriteString(baseStyle.Render("()"))
	}

	return b.String()
}
