/*
Package record defines the core domain entities for record grouping.
*/
package record

/*
Record is a product entry identified by its brand and name.
Two records belong to the same group when both fields are equal.
*/
type Record struct {
	Brand string `yaml:"brand"`
	Name  string `yaml:"name"`
}

// Key returns the composite key identifying the record's group.
func (r Record) Key() Key {
	return Key{Brand: r.Brand, Name: r.Name}
}

// Key is the (brand, name) pair used to identify distinct groups.
type Key struct {
	Brand string
	Name  string
}

// GroupedRecord is a Record annotated with the number of times it occurred.
type GroupedRecord struct {
	Record `yaml:",inline"`
	Count  int `yaml:"count"`
}
