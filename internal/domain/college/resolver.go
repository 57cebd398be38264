package college

import (
	"fmt"
	"sort"
	"strings"
)

// Resolver maps free-text college strings onto the curated catalog. It is
// immutable after construction and safe for concurrent use.
type Resolver struct {
	index     map[string]Identity
	mascots   []string
	byID      map[string]Identity
	byName    map[string]Identity
	canonical map[Identity]struct{}
}

// NewResolver indexes the catalog and validates the override tables against it.
func NewResolver(catalog []School, overrides Overrides) (*Resolver, error) {
	r := &Resolver{
		index:     make(map[string]Identity, len(catalog)*4),
		byID:      make(map[string]Identity, len(overrides.ByPlayerID)),
		byName:    make(map[string]Identity, len(overrides.ByName)),
		canonical: make(map[Identity]struct{}, len(catalog)),
	}

	mascotOwners := make(map[string]map[Identity]struct{})
	for _, school := range catalog {
		id := Identity(school.Name)
		if _, dup := r.canonical[id]; dup {
			return nil, fmt.Errorf("duplicate catalog entry %q", school.Name)
		}
		r.canonical[id] = struct{}{}

		bases := append([]string{school.Name}, school.Aliases...)
		for _, base := range bases {
			if err := r.add(Normalize(base), id); err != nil {
				return nil, err
			}
		}
		for _, mascot := range school.Mascots {
			m := Normalize(mascot)
			if mascotOwners[m] == nil {
				mascotOwners[m] = make(map[Identity]struct{})
			}
			mascotOwners[m][id] = struct{}{}
			for _, base := range bases {
				if err := r.add(Normalize(base)+" "+m, id); err != nil {
					return nil, err
				}
			}
		}
	}

	// A mascot on its own ("crimson tide") only resolves when one school owns it.
	for m, owners := range mascotOwners {
		r.mascots = append(r.mascots, m)
		if len(owners) != 1 {
			continue
		}
		if _, taken := r.index[m]; taken {
			continue
		}
		for id := range owners {
			r.index[m] = id
		}
	}
	sort.Slice(r.mascots, func(i, j int) bool {
		if len(r.mascots[i]) != len(r.mascots[j]) {
			return len(r.mascots[i]) > len(r.mascots[j])
		}
		return r.mascots[i] < r.mascots[j]
	})

	for playerID, target := range overrides.ByPlayerID {
		id, ok := r.lookup(target)
		if !ok {
			return nil, fmt.Errorf("override for player id %q: %q is not a catalog school", playerID, target)
		}
		r.byID[strings.TrimSpace(playerID)] = id
	}
	for name, target := range overrides.ByName {
		id, ok := r.lookup(target)
		if !ok {
			return nil, fmt.Errorf("override for player %q: %q is not a catalog school", name, target)
		}
		r.byName[NormalizePlayerName(name)] = id
	}

	return r, nil
}

func (r *Resolver) add(key string, id Identity) error {
	if key == "" {
		return nil
	}
	if existing, ok := r.index[key]; ok && existing != id {
		return fmt.Errorf("catalog key %q maps to both %q and %q", key, existing, id)
	}
	r.index[key] = id
	return nil
}

// Resolve returns the canonical identity for raw, consulting the player
// override tables when the string is a placeholder or unmapped.
func (r *Resolver) Resolve(raw string, player Player) Resolution {
	if !IsPlaceholder(raw) {
		if id, ok := r.lookup(raw); ok {
			return Resolution{Identity: id, Match: MatchCatalog}
		}
	}
	if player.ID != "" {
		if id, ok := r.byID[strings.TrimSpace(player.ID)]; ok {
			return Resolution{Identity: id, Match: MatchPlayerID}
		}
	}
	if player.Name != "" {
		if id, ok := r.byName[NormalizePlayerName(player.Name)]; ok {
			return Resolution{Identity: id, Match: MatchPlayerName}
		}
	}
	return Resolution{Identity: Unknown, Match: MatchNone}
}

// ResolveName resolves a bare school string without player context.
func (r *Resolver) ResolveName(raw string) Identity {
	return r.Resolve(raw, Player{}).Identity
}

// IsCanonical reports whether name is one of the curated display names.
func (r *Resolver) IsCanonical(name string) bool {
	_, ok := r.canonical[Identity(name)]
	return ok
}

// Canonicals returns the curated names in sorted order.
func (r *Resolver) Canonicals() []Identity {
	out := make([]Identity, 0, len(r.canonical))
	for id := range r.canonical {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// lookup tries the key with any single-word qualifier kept, then without it.
func (r *Resolver) lookup(raw string) (Identity, bool) {
	key := Normalize(raw)
	if id, ok := r.lookupKey(key); ok {
		return id, true
	}
	if bare := NormalizeUnqualified(raw); bare != key {
		return r.lookupKey(bare)
	}
	return "", false
}

func (r *Resolver) lookupKey(key string) (Identity, bool) {
	if key == "" {
		return "", false
	}
	if id, ok := r.index[key]; ok {
		return id, true
	}
	for _, m := range r.mascots {
		if base, found := strings.CutSuffix(key, " "+m); found {
			if id, ok := r.index[base]; ok {
				return id, true
			}
		}
	}
	return "", false
}
