package model

// Selections is the set of active choices in a build session.
type Selections struct {
	Tier        Tier
	Data        []OptionID // selection order, used for display
	Filtering   OptionID
	Behavior    OptionID
	Bias        OptionID
	AdaptToUser bool
}

// Active returns the active option ids of c. Single-select categories yield
// zero or one id.
func (s Selections) Active(c Category) []OptionID {
	var id OptionID
	switch c {
	case CategoryData:
		return append([]OptionID(nil), s.Data...)
	case CategoryFiltering:
		id = s.Filtering
	case CategoryBehavior:
		id = s.Behavior
	case CategoryBias:
		id = s.Bias
	}
	if id == "" {
		return nil
	}
	return []OptionID{id}
}

// IsActive reports whether id is currently selected in c.
func (s Selections) IsActive(c Category, id OptionID) bool {
	for _, a := range s.Active(c) {
		if a == id {
			return true
		}
	}
	return false
}

// Empty reports whether no option is active in any category.
func (s Selections) Empty() bool {
	return len(s.Data) == 0 && s.Filtering == "" && s.Behavior == "" && s.Bias == "" && !s.AdaptToUser
}

// Clone returns a copy that shares no memory with s.
func (s Selections) Clone() Selections {
	c := s
	c.Data = append([]OptionID(nil), s.Data...)
	return c
}

// Only returns the selections of c alone. The adapt-to-user flag travels
// with behavior.
func (s Selections) Only(c Category) Selections {
	out := Selections{Tier: s.Tier}
	switch c {
	case CategoryData:
		out.Data = append([]OptionID(nil), s.Data...)
	case CategoryFiltering:
		out.Filtering = s.Filtering
	case CategoryBehavior:
		out.Behavior = s.Behavior
		out.AdaptToUser = s.AdaptToUser
	case CategoryBias:
		out.Bias = s.Bias
	}
	return out
}
