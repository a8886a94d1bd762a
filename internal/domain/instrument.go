package domain

// Instrument is a tradable listing: an exchange identifier plus a
// display name. Instruments are static and defined at startup.
type Instrument struct {
	ID   string
	Name string
}

// Catalog is the read-only set of instruments the backend serves.
// It preserves listing order and supports lookup by id.
type Catalog struct {
	instruments []Instrument
	byID        map[string]Instrument
}

// NewCatalog creates a Catalog from the given instruments,
// preserving their order.
func NewCatalog(instruments []Instrument) *Catalog {
	byID := make(map[string]Instrument, len(instruments))
	for _, ins := range instruments {
		byID[ins.ID] = ins
	}
	return &Catalog{
		instruments: instruments,
		byID:        byID,
	}
}

// DefaultCatalog returns the simulated Taiwan-market listing the
// backend ships with.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Instrument{
		{ID: "2330", Name: "台積電"},
		{ID: "2317", Name: "鴻海"},
		{ID: "2454", Name: "聯發科"},
		{ID: "2303", Name: "聯電"},
		{ID: "2881", Name: "富邦金"},
		{ID: "2882", Name: "國泰金"},
		{ID: "2603", Name: "長榮"},
		{ID: "2308", Name: "台達電"},
		{ID: "2412", Name: "中華電"},
		{ID: "1301", Name: "台塑"},
	})
}

// List returns the instruments in listing order. The returned slice
// is a copy.
func (c *Catalog) List() []Instrument {
	out := make([]Instrument, len(c.instruments))
	copy(out, c.instruments)
	return out
}

// Get looks up an instrument by id.
func (c *Catalog) Get(id string) (Instrument, bool) {
	ins, ok := c.byID[id]
	return ins, ok
}

// Exists returns true if an instrument with the given id is listed.
func (c *Catalog) Exists(id string) bool {
	_, ok := c.byID[id]
	return ok
}
