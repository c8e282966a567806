package entity

// Address is a postal address value object. Each row is owned by exactly one
// Company (registered address), Receipt (sales point) or Invoice (buyer
// address); documents copy addresses, they never share them.
type Address struct {
	ID             string
	Street         string
	BuildingNumber string
	PostCode       string
	City           string
	Country        string
}
