package decomment

// Walker strips comments from every candidate file under a root directory.
type Walker interface {
	// Walk processes root recursively and stops at the first file that
	// cannot be read, decoded or written.
	Walk(root string) (Summary, error)
}
