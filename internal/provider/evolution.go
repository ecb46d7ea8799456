package provider

// Relatives lists the species a target species evolves from and into.
// Both slices are non-nil so they encode as [] rather than null.
type Relatives struct {
	EvolvesFrom []Resource `json:"evolves_from"`
	EvolvesTo   []Resource `json:"evolves_to"`
}

// FindRelatives searches chain for speciesID and returns its immediate
// parent and direct children.
//
// The walk is depth-first pre-order with the parent passed explicitly. A
// matching node contributes its parent (if any) and its children and is not
// descended into further. If several nodes match, each contributes in
// traversal order. A nil chain, nil root or absent target yields empty lists.
func FindRelatives(chain *EvolutionChain, speciesID int) Relatives {
	if chain == nil || chain.Chain == nil {
		return Relatives{EvolvesFrom: []Resource{}, EvolvesTo: []Resource{}}
	}
	return findRelatives(chain.Chain, nil, speciesID)
}

func findRelatives(node, parent *ChainLink, speciesID int) Relatives {
	out := Relatives{EvolvesFrom: []Resource{}, EvolvesTo: []Resource{}}

	if node.SpeciesID == speciesID {
		if parent != nil {
			out.EvolvesFrom = append(out.EvolvesFrom, parent.Resource())
		}
		for i := range node.EvolvesTo {
			out.EvolvesTo = append(out.EvolvesTo, node.EvolvesTo[i].Resource())
		}
		return out
	}

	for i := range node.EvolvesTo {
		sub := findRelatives(&node.EvolvesTo[i], node, speciesID)
		out.EvolvesFrom = append(out.EvolvesFrom, sub.EvolvesFrom...)
		out.EvolvesTo = append(out.EvolvesTo, sub.EvolvesTo...)
	}
	return out
}

// Walk visits every link of the tree in depth-first pre-order. It stops
// early when fn returns false.
func (l *ChainLink) Walk(fn func(link, parent *ChainLink) bool) {
	l.walk(nil, fn)
}

func (l *ChainLink) walk(parent *ChainLink, fn func(link, parent *ChainLink) bool) bool {
	if !fn(l, parent) {
		return false
	}
	for i := range l.EvolvesTo {
		if !l.EvolvesTo[i].walk(l, fn) {
			return false
		}
	}
	return true
}

// SpeciesIDs returns every species ID in the chain in pre-order.
func (c *EvolutionChain) SpeciesIDs() []int {
	ids := []int{}
	if c == nil || c.Chain == nil {
		return ids
	}
	c.Chain.Walk(func(link, _ *ChainLink) bool {
		ids = append(ids, link.SpeciesID)
		return true
	})
	return ids
}

// Validate checks that no species appears twice in the chain.
func (c *EvolutionChain) Validate() error {
	if c == nil || c.Chain == nil {
		return nil
	}
	seen := make(map[int]struct{})
	var dup *MalformedChainError
	c.Chain.Walk(func(link, _ *ChainLink) bool {
		if _, ok := seen[link.SpeciesID]; ok {
			dup = &MalformedChainError{ChainID: c.ID, SpeciesID: link.SpeciesID}
			return false
		}
		seen[link.SpeciesID] = struct{}{}
		return true
	})
	if dup != nil {
		return dup
	}
	return nil
}
