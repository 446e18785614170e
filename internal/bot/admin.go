package bot

// AdminGate answers "may this caller run administrative commands". The
// configured id list is the single source of truth.
type AdminGate struct {
	ids map[int64]struct{}
}

func NewAdminGate(ids []int64) *AdminGate {
	g := &AdminGate{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		g.ids[id] = struct{}{}
	}
	return g
}

func (g *AdminGate) Allowed(id int64) bool {
	_, ok := g.ids[id]
	return ok
}
