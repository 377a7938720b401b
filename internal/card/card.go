package card

import "sort"

// Record is one parsed card file. No schema is assumed.
type Record = any

// Collection maps a card ID (the file stem) to its record
type Collection map[string]Record

// IDs returns the card IDs in sorted order
func (c Collection) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
