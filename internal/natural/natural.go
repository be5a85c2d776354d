package natural

// Compare reports the natural ordering of a and b: -1 if a sorts before b,
// +1 if after, 0 otherwise. Both strings are scanned in lock-step; runs of
// whitespace are skipped independently on each side before every comparison
// step. Returns 0 once either string is exhausted without a difference.
func Compare(a, b string) int {
	result := 0
	for i, j := 0, 0; i < len(a) && j < len(b); i, j = i+1, j+1 {
		for i < len(a) && isSpace(a[i]) {
			i++
		}
		for j < len(b) && isSpace(b[j]) {
			j++
		}
		ca, cb := at(a, i), at(b, j)
		switch {
		case isDigit(ca) && isDigit(cb):
			result = compareDigits(a[i:], b[j:])
		case ca < cb:
			result = -1
		case ca > cb:
			result = 1
		}
		if result != 0 {
			break
		}
	}
	return result
}

// compareDigits compares the digit runs at the start of a and b. The first
// differing pair of digits is remembered while both runs continue; if either
// run starts with '0' the scan stops at the position after that difference.
// A run that outlasts the other wins outright.
func compareDigits(a, b string) int {
	leadZero := a[0] == '0' || b[0] == '0'
	result := 0
	i := 0
	for ; i < len(a) && i < len(b) && isDigit(a[i]) && isDigit(b[i]); i++ {
		if result == 0 {
			switch {
			case a[i] < b[i]:
				result = -1
			case a[i] > b[i]:
				result = 1
			}
		} else if leadZero {
			return result
		}
	}
	aDigit := i < len(a) && isDigit(a[i])
	bDigit := i < len(b) && isDigit(b[i])
	if aDigit && !bDigit {
		result = 1
	} else if !aDigit && bDigit {
		result = -1
	}
	return result
}

// at treats the index past the end of s as a NUL, so comparisons against an
// exhausted side behave like the terminator-based scan they replace.
func at(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	return s[i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
