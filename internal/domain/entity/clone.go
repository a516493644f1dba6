package entity

// Clone returns an independent copy of the draft. Snapshots handed to the
// rendering boundary are clones, so later mutations never show through.
func (d *StoreDraft) Clone() *StoreDraft {
	c := *d
	c.Hours = append(WeekHours(nil), d.Hours...)
	if d.Cover != nil {
		cover := *d.Cover
		c.Cover = &cover
	}
	if d.Logo != nil {
		logo := *d.Logo
		c.Logo = &logo
	}

	return &c
}

// Clone returns an independent copy of the error map.
func (m ErrorMap) Clone() ErrorMap {
	c := make(ErrorMap, len(m))
	for k, v := range m {
		c[k] = v
	}

	return c
}
