package domain

// Address is one delivery address registered on the customer's account.
type Address struct {
	ID      int
	Label   string
	Address string
}

// Restriction is a dietary restriction (pantangan) the platform can
// apply to prepared meals.
type Restriction struct {
	ID    int
	Name  string
	Group string
}

// PackageOrder is a customer's subscription: the package header plus
// every delivery derived from its raw schedule batches. Orders are
// reconstructed fresh from the platform on every read; nothing here is
// persisted locally.
type PackageOrder struct {
	ID                 int
	UserID             int
	PackageID          int
	PackageName        string
	PackageDescription string
	TotalDays          int
	LunchAmount        int
	DinnerAmount       int
	Deliveries         []Delivery
	Addresses          []Address
}

// Find returns the delivery with the given group id, if present.
func (o *PackageOrder) Find(groupID int) (Delivery, bool) {
	for _, d := range o.Deliveries {
		if d.GroupID == groupID {
			return d, true
		}
	}
	return Delivery{}, false
}
