package notes

// Collection is an insertion-ordered list of notes. Its methods never write
// through to the receiver's backing array; each returns a fresh slice.
type Collection []Note

func (c Collection) Len() int { return len(c) }

func (c Collection) Find(id int64) (Note, bool) {
	for _, n := range c {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

func (c Collection) Add(n Note) Collection {
	out := make(Collection, 0, len(c)+1)
	out = append(out, c...)
	return append(out, n)
}

// Delete drops the note with id. The second result is false when no note matched.
func (c Collection) Delete(id int64) (Collection, bool) {
	out := make(Collection, 0, len(c))
	found := false
	for _, n := range c {
		if n.ID == id {
			found = true
			continue
		}
		out = append(out, n)
	}
	if !found {
		return c, false
	}
	return out, true
}

// Edit replaces title and content of the note with id, keeping its place.
func (c Collection) Edit(id int64, title, content string) (Collection, bool) {
	idx := -1
	for i, n := range c {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c, false
	}
	out := make(Collection, len(c))
	copy(out, c)
	out[idx].Title = title
	out[idx].Content = content
	return out, true
}

func (c Collection) Filter(f Filter) Collection {
	out := make(Collection, 0, len(c))
	for _, n := range c {
		if f.Matches(n) {
			out = append(out, n)
		}
	}
	return out
}

func (c Collection) maxID() int64 {
	var last int64
	for _, n := range c {
		if n.ID > last {
			last = n.ID
		}
	}
	return last
}
