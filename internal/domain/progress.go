package domain

// ProgressMap is the set of completed chapters. A key is present (true)
// if and only if the chapter is complete; absent keys are incomplete and
// false is never stored.
type ProgressMap map[ChapterKey]bool

// Clone returns an independent copy. A nil map clones to an empty one.
func (m ProgressMap) Clone() ProgressMap {
	out := make(ProgressMap, len(m))
	for k, v := range m {
		if v {
			out[k] = true
		}
	}
	return out
}

// Done reports whether key is marked complete.
func (m ProgressMap) Done(key ChapterKey) bool {
	return m[key]
}

// Count returns the number of present keys.
func (m ProgressMap) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}
