package state

// Selection tracks which title of a fixed, ordered list is selected.
// The zero value has no items and reports an empty selection.
type Selection struct {
	items   []string
	current int
}

// NewSelection returns a selection over titles, starting at the first one.
// The slice is copied so later changes by the caller do not leak in.
func NewSelection(titles []string) Selection {
	items := make([]string, len(titles))
	copy(items, titles)
	return Selection{items: items}
}

// Current returns the selected title, or "" for an empty list.
func (s Selection) Current() string {
	if len(s.items) == 0 {
		return ""
	}
	return s.items[s.current]
}

// Index returns the position of the selected title.
func (s Selection) Index() int {
	return s.current
}

// Items returns a copy of the titles the selection ranges over.
func (s Selection) Items() []string {
	items := make([]string, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the number of selectable titles.
func (s Selection) Len() int {
	return len(s.items)
}

// Contains reports whether title is one of the selectable titles.
func (s Selection) Contains(title string) bool {
	return s.indexOf(title) >= 0
}

// Select replaces the selection with title. Titles outside the list are
// ignored so Current always names an item of the list.
func (s Selection) Select(title string) Selection {
	if i := s.indexOf(title); i >= 0 {
		s.current = i
	}
	return s
}

// SelectIndex selects the title at position i. Out-of-range positions are ignored.
func (s Selection) SelectIndex(i int) Selection {
	if i >= 0 && i < len(s.items) {
		s.current = i
	}
	return s
}

func (s Selection) indexOf(title string) int {
	for i, item := range s.items {
		if item == title {
			return i
		}
	}
	return -1
}
