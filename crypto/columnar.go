package crypto

import (
	"sort"
	"strings"
)

// columnOrder sorts the column indexes by their key letter, ignoring case.
// Repeated letters keep their left-to-right order.
func columnOrder(key string) []int {
	key = strings.ToLower(key)
	order := make([]int, len(key))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return key[order[a]] < key[order[b]]
	})
	return order
}

// ColumnarEncrypt writes text row by row under the key and reads the columns
// out in key order. The last row may be short; its empty cells are skipped.
func ColumnarEncrypt(text, key string) (string, error) {
	key, err := parseAlphabetKey(Columnar, key)
	if err != nil {
		return "", err
	}

	src := []rune(text)
	cols := len(key)
	out := make([]rune, 0, len(src))
	for _, c := range columnOrder(key) {
		for i := c; i < len(src); i += cols {
			out = append(out, src[i])
		}
	}
	return string(out), nil
}

// ColumnarDecrypt refills the columns in key order and reads the grid back
// row by row.
func ColumnarDecrypt(text, key string) (string, error) {
	key, err := parseAlphabetKey(Columnar, key)
	if err != nil {
		return "", err
	}

	src := []rune(text)
	cols := len(key)
	fullRows, longCols := len(src)/cols, len(src)%cols

	out := make([]rune, len(src))
	next := 0
	for _, c := range columnOrder(key) {
		height := fullRows
		if c < longCols {
			height++
		}
		for r := 0; r < height; r++ {
			out[r*cols+c] = src[next]
			next++
		}
	}
	return string(out), nil
}
