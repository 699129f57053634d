package cart

// Slot is one persisted key-value slot holding a serialized cart
// document. Saves always replace the whole value, so a lost update
// between two writers costs at most one mutation, never a partially
// written document.
type Slot interface {
	// Load returns the stored bytes, or nil when nothing is stored.
	Load() ([]byte, error)
	Save(raw []byte) error
}

// MemorySlot keeps the document in memory. Used by tests and callers
// that do not want persistence.
type MemorySlot struct {
	data []byte
}

func (s *MemorySlot) Load() ([]byte, error) {
	return s.data, nil
}

func (s *MemorySlot) Save(raw []byte) error {
	s.data = append([]byte(nil), raw...)
	return nil
}
