package dataset

// TripRecord is one parsed row of the input dataset: trips between an origin
// and a destination station. Hub-style exports (the Berkeley BART shape,
// where every row is a destination from one fixed origin) leave Origin empty
// and aggregate by destination. Records are immutable once read.
type TripRecord struct {
	Origin      string
	Destination string
	Label       string
	Count       int
}

// Columns names the CSV columns a loader run reads. A column name left
// empty is not required in the header; rows simply carry a zero value for
// that field.
type Columns struct {
	Origin      string
	Destination string
	Count       string
	Label       string
}
