package tournament

type EventDefinition struct {
	Name        string
	Kind        Kind
	Description string
}

// BuiltinEvents is the catalog every State starts with. Persisted definitions
// are merged on top of it; none of these can be removed.
var BuiltinEvents = []EventDefinition{
	{
		Name:        "Ping Pong Tournament",
		Kind:        KindTournament,
		Description: "Teams compete in a series of ping pong matches. Points: 3 per match won, 1 per match lost.",
	},
	{
		Name:        "Video Game Tournament",
		Kind:        KindTournament,
		Description: "Teams battle it out in a selected video game. Points: 3 per match won, 1 per match lost.",
	},
	{
		Name:        "College Quiz",
		Kind:        KindElimination,
		Description: "Teams answer a series of general knowledge questions; incorrect answers lead to elimination. Enter the final points awarded based on standing.",
	},
	{
		Name:        "Spelling Bee",
		Kind:        KindElimination,
		Description: "Teams participate in a spelling challenge. Teams are eliminated for incorrect spellings. Enter the final points awarded based on standing.",
	},
	{
		Name:        "Scavenger Hunt",
		Kind:        KindElimination,
		Description: "Teams follow clues to find hidden items around campus. Enter the final points awarded based on completion/items found.",
	},
}

type catalog struct {
	byName map[string]EventDefinition
	order  []string
}

func newCatalog() catalog {
	c := catalog{byName: make(map[string]EventDefinition, len(BuiltinEvents))}
	for _, e := range BuiltinEvents {
		c.put(e)
	}
	return c
}

// put adds or replaces a definition. New names keep arrival order.
func (c *catalog) put(e EventDefinition) {
	if _, ok := c.byName[e.Name]; !ok {
		c.order = append(c.order, e.Name)
	}
	c.byName[e.Name] = e
}

func (c catalog) get(name string) (EventDefinition, bool) {
	e, ok := c.byName[name]
	return e, ok
}

func (c catalog) list() []EventDefinition {
	out := make([]EventDefinition, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

func (c catalog) clone() catalog {
	out := catalog{
		byName: make(map[string]EventDefinition, len(c.byName)),
		order:  append([]string(nil), c.order...),
	}
	for k, v := range c.byName {
		out.byName[k] = v
	}
	return out
}
