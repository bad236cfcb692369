package domain

// Chip represents one product's inventory entry. ProductID is unique within
// the store and immutable after creation. Deadstock counts unsellable units
// tracked alongside the active quantity.
type Chip struct {
	ProductID   int
	ProductName string
	Quantity    int
	SellerName  string
	Price       int
	BrandName   string
	Deadstock   int
}
