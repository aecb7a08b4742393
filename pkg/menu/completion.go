package menu

import "github.com/sahilm/fuzzy"

// Completion holds ranked propositions and the position the user is at.
type Completion struct {
	Proposals []string
	Index     int
}

// Next cycles forward. Does nothing on an empty list.
func (c *Completion) Next() {
	if len(c.Proposals) == 0 {
		return
	}
	c.Index = (c.Index + 1) % len(c.Proposals)
}

// Prev cycles backward. Does nothing on an empty list.
func (c *Completion) Prev() {
	if len(c.Proposals) == 0 {
		return
	}
	if c.Index > 0 {
		c.Index--
	} else {
		c.Index = len(c.Proposals) - 1
	}
}

// Current returns the selected proposition or "" when empty.
func (c *Completion) Current() string {
	if len(c.Proposals) == 0 {
		return ""
	}
	return c.Proposals[c.Index]
}

// Update replaces the propositions and resets the position.
func (c *Completion) Update(proposals []string) {
	c.Index = 0
	c.Proposals = proposals
}

// Reset empties the propositions.
func (c *Completion) Reset() {
	c.Index = 0
	c.Proposals = c.Proposals[:0]
}

// Rank fills the propositions with candidates fuzzy-matched against the
// query, best first. An empty query keeps every candidate in order.
func (c *Completion) Rank(query string, candidates []string) {
	if query == "" {
		c.Update(append([]string(nil), candidates...))
		return
	}
	matches := fuzzy.Find(query, candidates)
	ranked := make([]string, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, m.Str)
	}
	c.Update(ranked)
}
