package products

// Store owns the product collection. Implementations keep insertion order and
// are safe for concurrent use.
type Store interface {
	Insert(f Fields) Product
	Replace(id string, f Fields) (Product, error)
	Delete(id string) (Product, error)
	Get(id string) (Product, bool)
	All() []Product
	Len() int
}
