package routing

// InsertRequest is the body of an insert call.
type InsertRequest struct {
	Value  int  `json:"value"`
	Unique bool `json:"unique"`
}

// DeleteRequest is the body of a delete call.
type DeleteRequest struct {
	Key int `json:"key"`
}

// CreateRes is returned when a list is created.
type CreateRes struct {
	ID string `json:"id"`
}

// IDsRes lists the IDs of all stored lists.
type IDsRes struct {
	IDs []string `json:"ids"`
}

// LenRes carries the length of a list after a mutation.
type LenRes struct {
	Len int `json:"len"`
}

// SearchRes reports whether a key was found.
type SearchRes struct {
	Found bool `json:"found"`
}

// ValuesRes carries the values of a list in traversal order.
type ValuesRes struct {
	Values []int `json:"values"`
}
