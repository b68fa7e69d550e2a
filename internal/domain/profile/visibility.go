package profile

// FilterPublic returns the public items of s in their original order. The
// input is never modified and the result never aliases it.
func FilterPublic[T interface{ IsPublic() bool }](s []T) []T {
	out := make([]T, 0, len(s))
	for _, it := range s {
		if it.IsPublic() {
			out = append(out, it)
		}
	}
	return out
}

// Entry is a listing row: system fields plus the ordered label/value pairs.
type Entry struct {
	ID         int64
	Visibility Visibility
	Fields     []Field
}

// Entries lists the category's items for display, in order.
func (p *Profile) Entries(c Category) ([]Entry, error) {
	items, err := p.Items(c)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(items))
	for _, it := range items {
		v := VisibilityPrivate
		if it.IsPublic() {
			v = VisibilityPublic
		}
		out = append(out, Entry{ID: it.ItemID(), Visibility: v, Fields: it.Fields()})
	}
	return out, nil
}
