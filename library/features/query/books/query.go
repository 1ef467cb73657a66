package books

const queryType = "ListBooks"

// Query lists all books. An empty CategoryID lists every category.
type Query struct {
	CategoryID string
}

func BuildQuery(categoryID string) Query {
	return Query{CategoryID: categoryID}
}

func (q Query) QueryType() string {
	return queryType
}
