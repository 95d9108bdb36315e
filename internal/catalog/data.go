package catalog

import "github.com/safar/go-store-assistant/internal/models"

// allProducts is the demo catalog. Declaration order is significant;
// "top 3" style suggestions are always a prefix of this order.
var allProducts = []models.Product{
	// Electronics
	{
		ID:            "WM-IP13-128",
		Name:          "iPhone 13 (128GB)",
		Category:      "electronics",
		Price:         69900,
		OriginalPrice: 75900,
		Rating:        4.5,
		Reviews:       2847,
		Description:   "Experience the power of iPhone 13 with A15 Bionic chip, advanced dual-camera system, and all-day battery life.",
		Stock:         25,
		StockStatus:   models.StockInStock,
	},
	{
		ID:            "WM-SP-N13-256",
		Name:          "Samsung Galaxy M35 5G (256GB)",
		Category:      "electronics",
		Price:         15999,
		OriginalPrice: 18999,
		Rating:        4.3,
		Reviews:       1524,
		Description:   "Powerful 5G smartphone with 108MP camera, 6000mAh battery, and Exynos processor.",
		Stock:         42,
		StockStatus:   models.StockInStock,
	},
	{
		ID:          "WM-OP-N3L-128",
		Name:        "OnePlus Nord CE 3 Lite 5G",
		Category:    "electronics",
		Price:       19999,
		Rating:      4.2,
		Reviews:     892,
		Description: "Smooth performance with 120Hz display, 108MP camera, and 67W SUPERVOOC charging.",
		Stock:       18,
		StockStatus: models.StockInStock,
	},
	{
		ID:            "WM-LAP-HP-15",
		Name:          "HP Pavilion 15.6-inch Laptop",
		Category:      "electronics",
		Price:         52990,
		OriginalPrice: 58990,
		Rating:        4.4,
		Reviews:       756,
		Description:   "Powerful laptop with Intel Core i5, 16GB RAM, and 512GB SSD for work and entertainment.",
		Stock:         8,
		StockStatus:   models.StockLowStock,
	},
	{
		ID:          "WM-TV-SAM-43",
		Name:        "Samsung 43-inch Smart TV",
		Category:    "electronics",
		Price:       32999,
		Rating:      4.6,
		Reviews:     1234,
		Description: "4K Ultra HD Smart TV with HDR and built-in streaming apps.",
		Stock:       15,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-TAB-IPAD",
		Name:        "iPad 10th Generation",
		Category:    "electronics",
		Price:       44900,
		Rating:      4.7,
		Reviews:     892,
		Description: "All-new colorful iPad with A14 Bionic chip and 10.9-inch Liquid Retina display.",
		Stock:       22,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-WATCH-APPLE",
		Name:        "Apple Watch Series 9",
		Category:    "electronics",
		Price:       41900,
		Rating:      4.5,
		Reviews:     567,
		Description: "Advanced health features, fitness tracking, and seamless iPhone integration.",
		Stock:       31,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-HEADPHONES-SONY",
		Name:        "Sony WH-1000XM5 Headphones",
		Category:    "electronics",
		Price:       29990,
		Rating:      4.8,
		Reviews:     1456,
		Description: "Industry-leading noise canceling with exceptional sound quality.",
		Stock:       19,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-SPEAKER-JBL",
		Name:        "JBL Charge 5 Bluetooth Speaker",
		Category:    "electronics",
		Price:       12999,
		Rating:      4.4,
		Reviews:     789,
		Description: "Powerful portable speaker with 20 hours of playtime and IP67 waterproof rating.",
		Stock:       45,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-CAMERA-CANON",
		Name:        "Canon EOS R50 Mirrorless Camera",
		Category:    "electronics",
		Price:       54999,
		Rating:      4.6,
		Reviews:     234,
		Description: "24.2MP APS-C sensor with 4K video recording and dual pixel autofocus.",
		Stock:       7,
		StockStatus: models.StockLowStock,
	},
	{
		ID:          "WM-GAMING-PS5",
		Name:        "PlayStation 5 Console",
		Category:    "electronics",
		Price:       49990,
		Rating:      4.9,
		Reviews:     3456,
		Description: "Next-gen gaming console with ultra-high speed SSD and ray tracing.",
		Stock:       3,
		StockStatus: models.StockLowStock,
	},
	{
		ID:          "WM-KEYBOARD-LOGITECH",
		Name:        "Logitech MX Keys Wireless Keyboard",
		Category:    "electronics",
		Price:       8999,
		Rating:      4.3,
		Reviews:     567,
		Description: "Advanced wireless keyboard with smart illumination and multi-device connectivity.",
		Stock:       28,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-MOUSE-APPLE",
		Name:        "Apple Magic Mouse",
		Category:    "electronics",
		Price:       7900,
		Rating:      4.1,
		Reviews:     345,
		Description: "Multi-touch surface mouse with rechargeable battery.",
		Stock:       34,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-CHARGER-ANKER",
		Name:        "Anker PowerCore 10000 Power Bank",
		Category:    "electronics",
		Price:       2499,
		Rating:      4.5,
		Reviews:     1234,
		Description: "Compact 10000mAh portable charger with PowerIQ technology.",
		Stock:       67,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-CABLE-USB-C",
		Name:        "USB-C to Lightning Cable 2m",
		Category:    "electronics",
		Price:       1999,
		Rating:      4.2,
		Reviews:     890,
		Description: "Fast charging cable compatible with iPhone and iPad.",
		Stock:       89,
		StockStatus: models.StockInStock,
	},

	// Grocery
	{
		ID:          "WM-RICE-BR-5KG",
		Name:        "Basmati Rice Premium Quality (5kg)",
		Category:    "grocery",
		Price:       525,
		Rating:      4.6,
		Reviews:     3421,
		Description: "Premium quality aged basmati rice with long grains and aromatic fragrance.",
		Stock:       156,
		StockStatus: models.StockInStock,
	},
	{
		ID:            "WM-PASTA-PEN-500G",
		Name:          "Whole Wheat Penne Pasta (500g)",
		Category:      "grocery",
		Price:         125,
		OriginalPrice: 145,
		Rating:        4.3,
		Reviews:       987,
		Description:   "Nutritious whole wheat pasta made from 100% durum wheat semolina.",
		Stock:         234,
		StockStatus:   models.StockInStock,
	},
	{
		ID:          "WM-OIL-OLIVE-500ML",
		Name:        "Extra Virgin Olive Oil (500ml)",
		Category:    "grocery",
		Price:       385,
		Rating:      4.5,
		Reviews:     1256,
		Description: "Cold-pressed extra virgin olive oil perfect for cooking and salads.",
		Stock:       78,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-MILK-FULL-1L",
		Name:        "Full Cream Milk (1 Liter)",
		Category:    "grocery",
		Price:       62,
		Rating:      4.7,
		Reviews:     2134,
		Description: "Fresh full cream milk rich in calcium and vitamins.",
		Stock:       345,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-BREAD-WHOLE",
		Name:        "Whole Wheat Bread Loaf",
		Category:    "grocery",
		Price:       45,
		Rating:      4.4,
		Reviews:     567,
		Description: "Fresh baked whole wheat bread with no preservatives.",
		Stock:       89,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-EGGS-DOZEN",
		Name:        "Farm Fresh Eggs (12 count)",
		Category:    "grocery",
		Price:       85,
		Rating:      4.6,
		Reviews:     1234,
		Description: "Grade A large eggs from free-range chickens.",
		Stock:       123,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-SUGAR-WHITE-1KG",
		Name:        "White Sugar (1kg)",
		Category:    "grocery",
		Price:       55,
		Rating:      4.2,
		Reviews:     456,
		Description: "Pure white refined sugar for cooking and baking.",
		Stock:       267,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-SALT-IODIZED",
		Name:        "Iodized Salt (1kg)",
		Category:    "grocery",
		Price:       25,
		Rating:      4.5,
		Reviews:     789,
		Description: "Pure iodized salt for daily cooking needs.",
		Stock:       345,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-TEA-BLACK-250G",
		Name:        "Premium Black Tea (250g)",
		Category:    "grocery",
		Price:       165,
		Rating:      4.4,
		Reviews:     678,
		Description: "Strong and aromatic black tea leaves from Assam.",
		Stock:       145,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-COFFEE-INSTANT",
		Name:        "Instant Coffee (200g)",
		Category:    "grocery",
		Price:       285,
		Rating:      4.3,
		Reviews:     567,
		Description: "Rich and smooth instant coffee for quick preparation.",
		Stock:       89,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-BISCUITS-DIGESTIVE",
		Name:        "Digestive Biscuits (400g)",
		Category:    "grocery",
		Price:       95,
		Rating:      4.1,
		Reviews:     345,
		Description: "Wholesome digestive biscuits made with wheat flour.",
		Stock:       178,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-SNACKS-DIABETIC",
		Name:        "Sugar-Free Diabetic Snacks Mix (300g)",
		Category:    "grocery",
		Price:       245,
		Rating:      4.2,
		Reviews:     234,
		Description: "Healthy sugar-free snack mix suitable for diabetics.",
		Stock:       67,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-NUTS-ALMONDS",
		Name:        "Raw Almonds (500g)",
		Category:    "grocery",
		Price:       485,
		Rating:      4.6,
		Reviews:     456,
		Description: "Premium quality raw almonds rich in protein and healthy fats.",
		Stock:       89,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-HONEY-PURE",
		Name:        "Pure Honey (500g)",
		Category:    "grocery",
		Price:       325,
		Rating:      4.5,
		Reviews:     678,
		Description: "100% pure natural honey with no added sugar.",
		Stock:       123,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-OATS-ROLLED",
		Name:        "Rolled Oats (1kg)",
		Category:    "grocery",
		Price:       185,
		Rating:      4.4,
		Reviews:     567,
		Description: "Nutritious rolled oats perfect for breakfast and baking.",
		Stock:       156,
		StockStatus: models.StockInStock,
	},

	// Home
	{
		ID:            "WM-SOFA-3S-GREY",
		Name:          "3-Seater Fabric Sofa (Grey)",
		Category:      "home",
		Price:         24999,
		OriginalPrice: 29999,
		Rating:        4.4,
		Reviews:       567,
		Description:   "Comfortable 3-seater sofa with premium fabric upholstery and solid wood frame.",
		Stock:         12,
		StockStatus:   models.StockInStock,
	},
	{
		ID:          "WM-TAB-DIN-4S",
		Name:        "4-Seater Dining Table Set",
		Category:    "home",
		Price:       18999,
		Rating:      4.2,
		Reviews:     324,
		Description: "Modern dining table set with 4 chairs, perfect for small families.",
		Stock:       8,
		StockStatus: models.StockLowStock,
	},
	{
		ID:          "WM-BED-QUEEN",
		Name:        "Queen Size Bed Frame",
		Category:    "home",
		Price:       15999,
		Rating:      4.3,
		Reviews:     234,
		Description: "Sturdy wooden queen size bed frame with headboard.",
		Stock:       15,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-MATTRESS-MEMORY",
		Name:        "Memory Foam Mattress Queen",
		Category:    "home",
		Price:       22999,
		Rating:      4.5,
		Reviews:     456,
		Description: "Premium memory foam mattress for comfortable sleep.",
		Stock:       18,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-WARDROBE-3DOOR",
		Name:        "3-Door Wooden Wardrobe",
		Category:    "home",
		Price:       19999,
		Rating:      4.1,
		Reviews:     178,
		Description: "Spacious 3-door wardrobe with hanging space and shelves.",
		Stock:       9,
		StockStatus: models.StockLowStock,
	},
	{
		ID:          "WM-CURTAINS-BLACKOUT",
		Name:        "Blackout Curtains Set",
		Category:    "home",
		Price:       1299,
		Rating:      4.2,
		Reviews:     345,
		Description: "Room darkening blackout curtains for better sleep.",
		Stock:       67,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-LAMP-TABLE",
		Name:        "Modern Table Lamp",
		Category:    "home",
		Price:       2499,
		Rating:      4.0,
		Reviews:     123,
		Description: "Stylish table lamp with adjustable brightness.",
		Stock:       34,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-RUG-LIVING",
		Name:        "Living Room Area Rug",
		Category:    "home",
		Price:       3999,
		Rating:      4.3,
		Reviews:     234,
		Description: "Soft and durable area rug for living room decoration.",
		Stock:       23,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-MIRROR-WALL",
		Name:        "Decorative Wall Mirror",
		Category:    "home",
		Price:       1899,
		Rating:      4.1,
		Reviews:     156,
		Description: "Elegant wall mirror to enhance room aesthetics.",
		Stock:       45,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-PLANT-POT",
		Name:        "Ceramic Plant Pot Set",
		Category:    "home",
		Price:       899,
		Rating:      4.4,
		Reviews:     89,
		Description: "Set of 3 ceramic pots perfect for indoor plants.",
		Stock:       78,
		StockStatus: models.StockInStock,
	},

	// Clothing
	{
		ID:            "WM-TSHIRT-COT-M",
		Name:          "Cotton T-Shirt Men's (Pack of 3)",
		Category:      "clothing",
		Price:         799,
		OriginalPrice: 999,
		Rating:        4.1,
		Reviews:       1847,
		Description:   "Premium cotton t-shirts in assorted colors, comfortable and breathable.",
		Stock:         145,
		StockStatus:   models.StockInStock,
	},
	{
		ID:          "WM-JEANS-BL-32",
		Name:        "Men's Blue Jeans (32 Waist)",
		Category:    "clothing",
		Price:       1299,
		Rating:      4.3,
		Reviews:     923,
		Description: "Classic blue jeans with regular fit and premium denim fabric.",
		Stock:       67,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-SHIRT-FORMAL",
		Name:        "Formal White Shirt",
		Category:    "clothing",
		Price:       899,
		Rating:      4.2,
		Reviews:     456,
		Description: "Crisp white formal shirt perfect for office wear.",
		Stock:       89,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-DRESS-CASUAL",
		Name:        "Women's Casual Dress",
		Category:    "clothing",
		Price:       1599,
		Rating:      4.4,
		Reviews:     234,
		Description: "Comfortable casual dress for everyday wear.",
		Stock:       34,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-SHOES-SNEAKERS",
		Name:        "Running Sneakers",
		Category:    "clothing",
		Price:       2499,
		Rating:      4.5,
		Reviews:     567,
		Description: "Comfortable running shoes with cushioned sole.",
		Stock:       45,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-JACKET-WINTER",
		Name:        "Winter Jacket",
		Category:    "clothing",
		Price:       3999,
		Rating:      4.3,
		Reviews:     178,
		Description: "Warm winter jacket with water-resistant coating.",
		Stock:       23,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-SOCKS-COTTON",
		Name:        "Cotton Socks (Pack of 6)",
		Category:    "clothing",
		Price:       399,
		Rating:      4.0,
		Reviews:     345,
		Description: "Comfortable cotton socks in assorted colors.",
		Stock:       156,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-UNDERWEAR-COTTON",
		Name:        "Cotton Underwear (Pack of 3)",
		Category:    "clothing",
		Price:       599,
		Rating:      4.1,
		Reviews:     234,
		Description: "Comfortable cotton underwear for daily wear.",
		Stock:       89,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-HAT-BASEBALL",
		Name:        "Baseball Cap",
		Category:    "clothing",
		Price:       699,
		Rating:      4.2,
		Reviews:     123,
		Description: "Adjustable baseball cap for sun protection.",
		Stock:       67,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "WM-BELT-LEATHER",
		Name:        "Genuine Leather Belt",
		Category:    "clothing",
		Price:       1199,
		Rating:      4.4,
		Reviews:     178,
		Description: "Premium leather belt with metal buckle.",
		Stock:       45,
		StockStatus: models.StockInStock,
	},
}
