package domain

const (
	MinCartQuantity = 1
	MaxCartQuantity = 10
)

// CartItem references a product by id. The product may have been deleted since
// the item was added; readers resolve it lazily.
type CartItem struct {
	ProductID string
	Quantity  int
}

// ClampQuantity bounds q to the inclusive range [MinCartQuantity, MaxCartQuantity].
func ClampQuantity(q int) int {
	if q < MinCartQuantity {
		return MinCartQuantity
	}
	if q > MaxCartQuantity {
		return MaxCartQuantity
	}
	return q
}
