package shop

// Period is the in-day time of day. Customer demand shifts with it.
type Period int

const (
	Morning Period = iota
	Afternoon
	Evening
	Night
)

// String returns the display name of the period.
func (p Period) String() string {
	switch p {
	case Morning:
		return "Morning"
	case Afternoon:
		return "Afternoon"
	case Evening:
		return "Evening"
	case Night:
		return "Night"
	default:
		return "Unknown"
	}
}

// Product is a sellable catalog item. TimePrefs is indexed by Period
// and scales the demand weight across the day.
type Product struct {
	ID           string
	Name         string
	Category     string
	Cost         int
	SellPrice    int
	DemandWeight int
	TimePrefs    [4]float64
}

// Products is the fixed catalog, in display order.
var Products = []Product{
	{ID: "laptop", Name: "Laptop", Category: "electronics", Cost: 800, SellPrice: 1200, DemandWeight: 5, TimePrefs: [4]float64{0.3, 0.4, 0.2, 0.1}},
	{ID: "phone", Name: "Phone", Category: "electronics", Cost: 600, SellPrice: 900, DemandWeight: 8, TimePrefs: [4]float64{0.2, 0.5, 0.2, 0.1}},
	{ID: "tablet", Name: "Tablet", Category: "electronics", Cost: 400, SellPrice: 600, DemandWeight: 10, TimePrefs: [4]float64{0.3, 0.4, 0.2, 0.1}},
	{ID: "headphones", Name: "Headphones", Category: "electronics", Cost: 150, SellPrice: 220, DemandWeight: 12, TimePrefs: [4]float64{0.2, 0.4, 0.3, 0.1}},
	{ID: "shirt", Name: "Shirt", Category: "clothing", Cost: 25, SellPrice: 40, DemandWeight: 15, TimePrefs: [4]float64{0.3, 0.4, 0.2, 0.1}},
	{ID: "pants", Name: "Pants", Category: "clothing", Cost: 40, SellPrice: 65, DemandWeight: 12, TimePrefs: [4]float64{0.2, 0.5, 0.2, 0.1}},
	{ID: "jacket", Name: "Jacket", Category: "clothing", Cost: 80, SellPrice: 120, DemandWeight: 8, TimePrefs: [4]float64{0.4, 0.3, 0.2, 0.1}},
	{ID: "shoes", Name: "Shoes", Category: "clothing", Cost: 60, SellPrice: 90, DemandWeight: 10, TimePrefs: [4]float64{0.3, 0.4, 0.2, 0.1}},
	{ID: "apple", Name: "Apple", Category: "food", Cost: 2, SellPrice: 3, DemandWeight: 25, TimePrefs: [4]float64{0.4, 0.3, 0.2, 0.1}},
	{ID: "bread", Name: "Bread", Category: "food", Cost: 3, SellPrice: 5, DemandWeight: 20, TimePrefs: [4]float64{0.5, 0.3, 0.1, 0.1}},
	{ID: "milk", Name: "Milk", Category: "food", Cost: 4, SellPrice: 6, DemandWeight: 18, TimePrefs: [4]float64{0.6, 0.2, 0.1, 0.1}},
	{ID: "eggs", Name: "Eggs", Category: "food", Cost: 5, SellPrice: 8, DemandWeight: 15, TimePrefs: [4]float64{0.5, 0.3, 0.1, 0.1}},
}

// CustomerType is a customer archetype: how long they wait and how
// much they can spend.
type CustomerType struct {
	Name     string
	Patience int
	Budget   int
}

// CustomerTypes is the fixed archetype table.
var CustomerTypes = []CustomerType{
	{Name: "Businessman", Patience: 8, Budget: 1500},
	{Name: "Professional", Patience: 6, Budget: 1200},
	{Name: "Student", Patience: 7, Budget: 1000},
	{Name: "Senior", Patience: 10, Budget: 800},
	{Name: "Elderly", Patience: 9, Budget: 700},
}

// productByID looks up a catalog product.
func productByID(id string) (Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
