// internal/services/seed_data.go
package services

type storeSeed struct {
	Name      string
	Category  string
	Address   string
	Latitude  float64
	Longitude float64
	Phone     string
}

type productSeed struct {
	Name        string
	Brand       string
	Category    string
	Unit        string
	Description string
}

// offerPlan prices one product category across a group of stores.
type offerPlan struct {
	ProductCategory string
	StoreCategory   string
	Prices          []float64
	Quantities      []int
	// NameSurcharge is added to each price once per character of the product name.
	NameSurcharge float64
	// Discount applies at the stores whose index satisfies DiscountAt.
	Discount   float64
	DiscountAt func(storeIdx int) bool
	// StepPerProduct raises prices by this much for each successive product.
	StepPerProduct float64
}

var quickStores = []storeSeed{
	{Name: "Fresh Market", Category: "grocery", Address: "Market St", Latitude: 11.34, Longitude: 77.71},
	{Name: "Office Supplies", Category: "stationery", Address: "School Rd", Latitude: 11.35, Longitude: 77.72},
	{Name: "Home Mart", Category: "household", Address: "Main Ave", Latitude: 11.33, Longitude: 77.70},
}

var quickProducts = []productSeed{
	{Name: "Rice", Brand: "India Gate", Category: "grocery", Unit: "1kg", Description: "Premium rice"},
	{Name: "Oil", Brand: "Fortune", Category: "grocery", Unit: "1L"},
	{Name: "Flour", Brand: "Aashirvaad", Category: "grocery", Unit: "5kg"},
	{Name: "Tomato", Brand: "Fresh", Category: "grocery", Unit: "500g"},
	{Name: "Potato", Brand: "Farm", Category: "grocery", Unit: "1kg"},
	{Name: "Notebook", Brand: "ITC", Category: "stationery", Unit: "200pg"},
	{Name: "Pen", Brand: "Reynolds", Category: "stationery", Unit: "Pack of 5"},
	{Name: "Pencil", Brand: "Camlin", Category: "stationery", Unit: "Box of 12"},
	{Name: "Soap", Brand: "Dettol", Category: "household", Unit: "100g"},
	{Name: "Cleaner", Brand: "Vim", Category: "household", Unit: "500ml"},
	{Name: "Detergent", Brand: "Omo", Category: "household", Unit: "1kg"},
	{Name: "Sugar", Brand: "Uttam", Category: "grocery", Unit: "1kg"},
	{Name: "Salt", Brand: "Tata", Category: "grocery", Unit: "1kg"},
	{Name: "Scissors", Brand: "Kangaro", Category: "stationery", Unit: "1pc"},
	{Name: "Towels", Brand: "Scotch", Category: "household", Unit: "2 rolls"},
}

var fullStores = []storeSeed{
	{Name: "Fresh Vegetables", Category: "grocery", Address: "Green Market, Main Street, Downtown", Latitude: 11.3415, Longitude: 77.7171, Phone: "+91-123-456-7890"},
	{Name: "New Veggies Market", Category: "grocery", Address: "Modern Plaza, Park Road, Uptown", Latitude: 11.3380, Longitude: 77.7250, Phone: "+91-123-456-7891"},
	{Name: "Organic Grains Hub", Category: "grocery", Address: "Farmer's Market, NH-47, Bypass", Latitude: 11.3500, Longitude: 77.7100, Phone: "+91-123-456-7892"},
	{Name: "Premium Foods Store", Category: "grocery", Address: "Premium Plaza, Business District", Latitude: 11.3450, Longitude: 77.7300, Phone: "+91-123-456-7893"},
	{Name: "Manus Store", Category: "stationery", Address: "Education Plaza, School Road", Latitude: 11.3425, Longitude: 77.7180, Phone: "+91-234-567-8901"},
	{Name: "Scholar's Hub", Category: "stationery", Address: "Study Center, College Avenue", Latitude: 11.3405, Longitude: 77.7210, Phone: "+91-234-567-8902"},
	{Name: "Knowledge Corner", Category: "stationery", Address: "Library Lane, Community Center", Latitude: 11.3435, Longitude: 77.7160, Phone: "+91-234-567-8903"},
	{Name: "Clean Home Mart", Category: "household", Address: "Shopping Complex, Market Street", Latitude: 11.3410, Longitude: 77.7190, Phone: "+91-345-678-9012"},
	{Name: "Home Essentials", Category: "household", Address: "Retail Park, Trade Avenue", Latitude: 11.3420, Longitude: 77.7140, Phone: "+91-345-678-9013"},
	{Name: "Pipe & Valve Hub", Category: "plumbing", Address: "Industrial Area, Engineering Road", Latitude: 11.3450, Longitude: 77.7210, Phone: "+91-456-789-0123"},
	{Name: "Plumbing Plus", Category: "plumbing", Address: "Trade Center, Commerce Lane", Latitude: 11.3380, Longitude: 77.7160, Phone: "+91-456-789-0124"},
	{Name: "Electronics World", Category: "electronics", Address: "Tech Park, Digital Avenue", Latitude: 11.3390, Longitude: 77.7230, Phone: "+91-567-890-1234"},
	{Name: "Power & Lights", Category: "electronics", Address: "Shopping Hub, Retail Drive", Latitude: 11.3430, Longitude: 77.7120, Phone: "+91-567-890-1235"},
}

var fullProducts = []productSeed{
	{"Basmati Rice", "India Gate", "grocery", "1 kg", "Premium basmati | Mfg: Jan 2026 | Best Before: Dec 2027"},
	{"Jasmine Rice", "Tata", "grocery", "1 kg", "Jasmine fragrant | Mfg: Feb 2026 | Best Before: Jan 2028"},
	{"Cooking Oil", "Fortune", "grocery", "1 L", "Pure vegetable | Mfg: Mar 2026 | Best Before: Mar 2027"},
	{"Olive Oil", "Figaro", "grocery", "500 ml", "Extra virgin | Mfg: Dec 2025 | Best Before: Dec 2026"},
	{"Whole Wheat Atta", "Aashirvaad", "grocery", "5 kg", "Stone ground | Mfg: Feb 2026 | Best Before: Aug 2026"},
	{"Toor Dal", "Tata Sampann", "grocery", "500 g", "Yellow split | Mfg: Jan 2026 | Best Before: Jan 2027"},
	{"Sugar", "Uttam", "grocery", "1 kg", "Refined | Mfg: Feb 2026 | Best Before: Feb 2027"},
	{"Salt", "Tata Salt", "grocery", "1 kg", "Iodized | Mfg: Jan 2026 | Best Before: Dec 2026"},

	{"Tomato", "Local Fresh", "vegetables", "500 g", "Red ripe tomatoes | Fresh arrival | Best within 3 days"},
	{"Potato", "Organic Picks", "vegetables", "1 kg", "White potato | Mfg: Feb 2026"},
	{"Onion", "Farm Fresh", "vegetables", "1 kg", "Golden onion | Fresh stock | Best within 2 weeks"},
	{"Carrot", "Fresh Farm", "vegetables", "500 g", "Orange carrots | Mfg: Feb 2026 | Best: 1 week"},
	{"Broccoli", "Green Picks", "vegetables", "1 head", "Fresh green broccoli | Best consumed within 5 days"},
	{"Capsicum", "Agro Fresh", "vegetables", "250 g", "Mixed colors | Fresh | Best within 1 week"},

	{"Books", "Classmate", "stationery", "100 pages", "Notebook | Ruled | Mfg: Jan 2026"},
	{"Books", "Classmate", "stationery", "200 pages", "Notebook | Ruled | Mfg: Jan 2026"},
	{"Books", "Camlin", "stationery", "150 pages", "Drawing book | Blank | Mfg: Feb 2026"},
	{"Pens", "Reynolds", "stationery", "Pack of 5", "Blue ballpoint | Mfg: Dec 2025"},
	{"Pens", "Reynolds", "stationery", "Pack of 10", "Blue ballpoint | Mfg: Dec 2025"},
	{"Pencils", "Camlin", "stationery", "Set of 12", "HB lead | Mfg: Jan 2026"},
	{"Pencils", "Camlin", "stationery", "Set of 24", "Assorted | Mfg: Jan 2026"},
	{"Stapler", "Kangaro", "stationery", "1 piece", "Desktop stapler | Mfg: Nov 2025"},
	{"Eraser", "Apsara", "stationery", "Pack of 2", "Vinyl eraser | Mfg: Dec 2025"},
	{"Ruler", "Camlin", "stationery", "30 cm", "Plastic ruler | Mfg: Jan 2026"},

	{"Detergent", "Surf Excel", "household", "1 kg", "Powder detergent | Mfg: Feb 2026 | Best Before: Feb 2027"},
	{"Dish Soap", "Vim", "household", "750 ml", "Liquid soap | Mfg: Mar 2026 | Best Before: Mar 2027"},
	{"Paper Towels", "Scotch Brite", "household", "2 rolls", "2-ply roll | Mfg: Jan 2026 | Best Before: Jan 2028"},
	{"Trash Bags", "Safewrap", "household", "Pack of 30", "Large size bags | Mfg: Feb 2026 | Best Before: Feb 2028"},

	{"Chrome Faucet", "Parryware", "plumbing", "1 piece", "Modern chrome finish | Hot & cold water | Mfg: Jan 2026"},
	{"Adjustable Wrench", "Stanley", "plumbing", "10 inch", "Professional grade | Mfg: Dec 2025 | Best for 8-30mm"},
	{"PVC Pipe", "Supreme", "plumbing", "3 m length", "Water delivery | Class B | Mfg: Feb 2026 | Durable"},
	{"Teflon Tape", "Tapex", "plumbing", "Pack of 3", "Thread seal tape | Mfg: Jan 2026 | Standard width"},

	{"LED Bulb 9W", "Philips", "electronics", "1 piece", "Warm white | 6500K | Mfg: Feb 2026 | Energy efficient"},
	{"Extension Cord", "Anchor", "electronics", "5 m", "Heavy duty | 3 pins | Mfg: Jan 2026 | Safety certified"},
	{"USB-C Charger", "Boat", "electronics", "20W", "Fast charging | Mfg: Mar 2026 | Universal compatible"},
	{"AA Batteries", "Duracell", "electronics", "Pack of 4", "Alkaline | Ultra power | Mfg: Feb 2026 | Long lasting"},
}

func even(i int) bool  { return i%2 == 0 }
func odd(i int) bool   { return i%2 == 1 }
func first(i int) bool { return i == 0 }

var fullOfferPlans = []offerPlan{
	{ProductCategory: "grocery", StoreCategory: "grocery", Prices: []float64{95, 100, 110, 92}, Quantities: []int{45, 52, 38, 60}, StepPerProduct: 5, Discount: 15, DiscountAt: even},
	{ProductCategory: "vegetables", StoreCategory: "grocery", Prices: []float64{35, 38, 32, 40}, Quantities: []int{25, 18, 32, 22}, Discount: 20, DiscountAt: odd},
	{ProductCategory: "stationery", StoreCategory: "stationery", Prices: []float64{85, 92, 78}, Quantities: []int{150, 120, 180}, NameSurcharge: 1, Discount: 10, DiscountAt: first},
	{ProductCategory: "household", StoreCategory: "household", Prices: []float64{120, 125}, Quantities: []int{75, 85}, Discount: 12, DiscountAt: odd},
	{ProductCategory: "plumbing", StoreCategory: "plumbing", Prices: []float64{450, 480}, Quantities: []int{45, 50}, NameSurcharge: 5, Discount: 8, DiscountAt: first},
	{ProductCategory: "electronics", StoreCategory: "electronics", Prices: []float64{550, 600}, Quantities: []int{60, 70}, NameSurcharge: 3, Discount: 18, DiscountAt: odd},
}
