package crypto

// RailFenceEncrypt writes text in a zig-zag over the given number of rails and
// reads the rails top to bottom. Every rune takes part, letters or not.
func RailFenceEncrypt(text, key string) (string, error) {
	rails, err := parseNumericKey(RailFence, key)
	if err != nil {
		return "", err
	}

	src := []rune(text)
	order := railOrder(len(src), rails)
	if order == nil {
		return text, nil
	}

	out := make([]rune, len(src))
	for i, pos := range order {
		out[i] = src[pos]
	}
	return string(out), nil
}

func RailFenceDecrypt(text, key string) (string, error) {
	rails, err := parseNumericKey(RailFence, key)
	if err != nil {
		return "", err
	}

	src := []rune(text)
	order := railOrder(len(src), rails)
	if order == nil {
		return text, nil
	}

	out := make([]rune, len(src))
	for i, pos := range order {
		out[pos] = src[i]
	}
	return string(out), nil
}

// railOrder walks the zig-zag over n positions and returns them rail by rail.
// A key of 0 or 1 rails, or a text no longer than one rail, has no zig-zag
// and yields nil.
func railOrder(n, rails int) []int {
	if rails <= 1 || n <= 1 {
		return nil
	}

	rows := make([][]int, rails)
	row, dir := 0, 1
	for i := 0; i < n; i++ {
		rows[row] = append(rows[row], i)
		row += dir
		if row == 0 || row == rails-1 {
			dir = -dir
		}
	}

	order := make([]int, 0, n)
	for _, r := range rows {
		order = append(order, r...)
	}
	return order
}
