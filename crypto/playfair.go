package crypto

import (
	"strings"
)

const gridSize = 5

type gridPos struct {
	row, col int
}

// PlayfairGrid is the 5x5 key square. I and J share a cell.
type PlayfairGrid struct {
	cells [gridSize][gridSize]rune
	pos   [alphabetSize]gridPos
}

// NewPlayfairGrid validates key and builds its key square.
func NewPlayfairGrid(key string) (*PlayfairGrid, error) {
	key, err := parseAlphabetKey(Playfair, key)
	if err != nil {
		return nil, err
	}
	return buildPlayfairGrid(key), nil
}

func buildPlayfairGrid(key string) *PlayfairGrid {
	g := &PlayfairGrid{}
	var used [alphabetSize]bool
	n := 0
	place := func(r rune) {
		r = toLower(r)
		if r == 'j' {
			r = 'i'
		}
		idx := letterIndex(r)
		if used[idx] {
			return
		}
		used[idx] = true
		row, col := n/gridSize, n%gridSize
		g.cells[row][col] = r
		g.pos[idx] = gridPos{row, col}
		n++
	}

	for _, r := range key {
		place(r)
	}
	for r := 'a'; r <= 'z'; r++ {
		place(r)
	}
	g.pos['j'-'a'] = g.pos['i'-'a']
	return g
}

// Rows renders the grid as five upper-case strings.
func (g *PlayfairGrid) Rows() []string {
	rows := make([]string, gridSize)
	for i := 0; i < gridSize; i++ {
		var b strings.Builder
		for j := 0; j < gridSize; j++ {
			b.WriteRune(toUpper(g.cells[i][j]))
		}
		rows[i] = b.String()
	}
	return rows
}

func (g *PlayfairGrid) String() string {
	var b strings.Builder
	for i, row := range g.Rows() {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, r := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// substitute applies the Playfair rules to one digraph. step is +1 to encrypt
// and -1 to decrypt; the rectangle rule is its own inverse.
func (g *PlayfairGrid) substitute(a, b rune, step int) (rune, rune) {
	pa, pb := g.pos[letterIndex(a)], g.pos[letterIndex(b)]
	var ca, cb rune
	switch {
	case pa.row == pb.row:
		ca = g.cells[pa.row][wrap(pa.col+step, gridSize)]
		cb = g.cells[pb.row][wrap(pb.col+step, gridSize)]
	case pa.col == pb.col:
		ca = g.cells[wrap(pa.row+step, gridSize)][pa.col]
		cb = g.cells[wrap(pb.row+step, gridSize)][pb.col]
	default:
		ca = g.cells[pa.row][pb.col]
		cb = g.cells[pb.row][pa.col]
	}
	return matchCase(ca, a), matchCase(cb, b)
}

func wrap(n, m int) int {
	return ((n % m) + m) % m
}

// passthrough is a non-letter rune together with the number of letters that
// preceded it in the input.
type passthrough struct {
	after int
	r     rune
}

// splitPlayfairText separates letters from everything else. J is folded into
// I, keeping its case.
func splitPlayfairText(text string) ([]rune, []passthrough) {
	var letters []rune
	var others []passthrough
	for _, r := range text {
		if !isLetter(r) {
			others = append(others, passthrough{after: len(letters), r: r})
			continue
		}
		switch r {
		case 'j':
			r = 'i'
		case 'J':
			r = 'I'
		}
		letters = append(letters, r)
	}
	return letters, others
}

// fillerFor picks the letter inserted after r. X is split with Q so that no
// digraph ever holds the same letter twice.
func fillerFor(r rune) rune {
	f := 'x'
	if toLower(r) == 'x' {
		f = 'q'
	}
	return matchCase(f, r)
}

// digraphs lays letters out as pairs, inserting a filler between doubled
// letters and after an odd trailing letter. origin[k] is the index in the
// result that letter k of the input ended up at.
func digraphs(letters []rune) ([]rune, []int) {
	prepared := make([]rune, 0, len(letters)+len(letters)/2+1)
	origin := make([]int, 0, len(letters))
	for i := 0; i < len(letters); {
		a := letters[i]
		origin = append(origin, len(prepared))
		prepared = append(prepared, a)

		if i+1 < len(letters) && toLower(letters[i+1]) != toLower(a) {
			origin = append(origin, len(prepared))
			prepared = append(prepared, letters[i+1])
			i += 2
			continue
		}
		prepared = append(prepared, fillerFor(a))
		i++
	}
	return prepared, origin
}

// splice puts the non-letters back. Each one lands directly in front of the
// output letter derived from the input letter that followed it.
func splice(out []rune, origin []int, others []passthrough) string {
	var b strings.Builder
	b.Grow(len(out) + len(others))
	next := 0
	for _, p := range others {
		at := len(out)
		if p.after < len(origin) {
			at = origin[p.after]
		}
		b.WriteString(string(out[next:at]))
		b.WriteRune(p.r)
		next = at
	}
	b.WriteString(string(out[next:]))
	return b.String()
}

func playfair(text, key string, step int) (string, error) {
	grid, err := NewPlayfairGrid(key)
	if err != nil {
		return "", err
	}

	letters, others := splitPlayfairText(text)
	prepared, origin := digraphs(letters)
	for i := 0; i+1 < len(prepared); i += 2 {
		prepared[i], prepared[i+1] = grid.substitute(prepared[i], prepared[i+1], step)
	}
	return splice(prepared, origin, others), nil
}

// PlayfairEncrypt enciphers the letters of text digraph by digraph. Spaces and
// punctuation are kept at their place relative to the surrounding letters.
func PlayfairEncrypt(text, key string) (string, error) {
	return playfair(text, key, 1)
}

// PlayfairDecrypt reverses PlayfairEncrypt. Filler letters inserted during
// encryption stay in the output since they cannot be told apart from real
// ones.
func PlayfairDecrypt(text, key string) (string, error) {
	return playfair(text, key, -1)
}
