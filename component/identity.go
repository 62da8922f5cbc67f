package component

// Identity is the registry-assigned agent ID, stable for the agent's lifetime
type Identity struct {
	ID uint64
}

// AssignID is called once by the owning registry on insertion
func (i *Identity) AssignID(id uint64) {
	i.ID = id
}

// AgentID returns the registry-assigned ID, 0 if never registered
func (i *Identity) AgentID() uint64 {
	return i.ID
}
