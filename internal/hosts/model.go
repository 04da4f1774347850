package hosts

// Entry is one normalized hosts line: a sinkhole address and the domain it
// overrides. Domain keeps the case it had in the source list.
type Entry struct {
	Address string // e.g. 0.0.0.0
	Domain  string // as found in the source
}

// Key returns the uniqueness key of the entry.
func (e Entry) Key() string {
	return foldKey(e.Domain)
}

// String renders the entry in hosts file form.
func (e Entry) String() string {
	return e.Address + " " + e.Domain
}
