// Package taxonomy implements the slug-addressed catalog dimensions.
// Category and Genre share one shape and one CRUD contract; they differ
// only in the table they live in, so both are instantiations of the
// same repository, service and handler.
package taxonomy

// Term is a single catalog entry (one category or one genre).
type Term struct {
	ID   int64  `json:"-"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Kind selects which dimension a component instance operates on.
type Kind struct {
	Singular string
	Table    string
}

var (
	Category = Kind{Singular: "category", Table: "categories"}
	Genre    = Kind{Singular: "genre", Table: "genres"}
)
