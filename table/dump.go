package table

import "encoding/json"

// Dump is a serializable representation of a Table.
type Dump struct {
	T []float64 `json:"t"`
	X []float64 `json:"x"`
}

// Dump generates a serializable dump of the table's samples.
func (tab *Table) Dump() *Dump {
	d := &Dump{
		T: make([]float64, len(tab.ts)),
		X: make([]float64, len(tab.xs)),
	}
	copy(d.T, tab.ts)
	copy(d.X, tab.xs)

	return d
}

// FromDump restores a table from a dump. The dump may come from an
// untrusted source, so its ordering is re-validated.
func FromDump(d *Dump) (*Table, error) {
	return New(d.T, d.X)
}

// MarshalJSON implements the json.Marshaler interface.
func (tab *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(tab.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (tab *Table) UnmarshalJSON(bytes []byte) error {
	var d Dump
	if err := json.Unmarshal(bytes, &d); err != nil {
		return err
	}

	restored, err := FromDump(&d)
	if err != nil {
		return err
	}

	*tab = *restored

	return nil
}
