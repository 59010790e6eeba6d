package catalog

import "github.com/pricecart/pricecart/internal/model"

// Baseline store distances used before a zipcode is applied, in miles.
var defaultDistances = map[string]float64{
	"Costco":   1.4,
	"Walmart":  2.5,
	"Aldi":     4.4,
	"Meijer's": 3.1,
	"Kroger":   4.2,
}

func sp(store string, price float64) model.StorePrice {
	return model.StorePrice{Store: store, Price: price, Distance: defaultDistances[store]}
}

// products is the fixed demo catalog. Store prices are listed cheapest
// first; Price carries the headline (lowest) price, except where the
// seeded data pins a specific store's price.
var products = []model.Product{
	{ID: 1, Name: "Fresh Red Apples", Image: "🍎", Category: "Fruits", Size: "2 lb", Price: 2.74, StorePrices: []model.StorePrice{
		sp("Costco", 2.74), sp("Walmart", 2.94), sp("Aldi", 3.49), sp("Meijer's", 3.99), sp("Kroger", 4.99),
	}},
	{ID: 2, Name: "Organic Vegetables Mix", Image: "🥬", Category: "Vegetables", Size: "1 Pack", Price: 3.84, StorePrices: []model.StorePrice{
		sp("Costco", 3.84), sp("Walmart", 4.84), sp("Aldi", 5.29), sp("Meijer's", 6.99),
	}},
	{ID: 3, Name: "Fresh Orange Juice", Image: "🧃", Category: "Drinks", Size: "32 fl oz", Price: 3.02, StorePrices: []model.StorePrice{
		sp("Costco", 3.02), sp("Walmart", 4.02), sp("Aldi", 4.54), sp("Meijer's", 5.49), sp("Kroger", 6.49),
	}},
	{ID: 4, Name: "Artisan Sourdough Bread", Image: "🍞", Category: "Bakery", Size: "1 loaf", Price: 2.19, StorePrices: []model.StorePrice{
		sp("Costco", 5.19), sp("Walmart", 2.19), sp("Aldi", 3.59), sp("Meijer's", 4.99), sp("Kroger", 3.79),
	}},
	{ID: 5, Name: "Organic Whole Milk", Image: "🥛", Category: "Dairy", Size: "48 fl oz", Price: 2.47, StorePrices: []model.StorePrice{
		sp("Costco", 2.47), sp("Walmart", 2.67), sp("Aldi", 3.84), sp("Meijer's", 4.29), sp("Kroger", 4.59),
	}},
	{ID: 6, Name: "Italian Pasta Collection", Image: "🍝", Category: "Pantry", Size: "16 oz", Price: 4.39, StorePrices: []model.StorePrice{
		sp("Walmart", 4.39), sp("Aldi", 6.89), sp("Meijer's", 7.49), sp("Kroger", 7.79),
	}},
	{ID: 7, Name: "Bananas (1 lb)", Image: "🍌", Category: "Fruits", Size: "1 lb", Price: 1.09, StorePrices: []model.StorePrice{
		sp("Costco", 1.09), sp("Walmart", 1.19), sp("Aldi", 1.69), sp("Kroger", 1.89),
	}},
	{ID: 8, Name: "Fresh Spinach", Image: "🥬", Category: "Vegetables", Size: "10 oz", Price: 1.92, StorePrices: []model.StorePrice{
		sp("Costco", 1.92), sp("Walmart", 2.12), sp("Aldi", 2.94), sp("Meijer's", 3.29), sp("Kroger", 3.39),
	}},
	{ID: 9, Name: "Fresh Strawberries", Image: "🍓", Category: "Fruits", Size: "1 lb", Price: 3.29, StorePrices: []model.StorePrice{
		sp("Costco", 3.29), sp("Walmart", 3.49), sp("Aldi", 5.19), sp("Kroger", 5.79),
	}},
	{ID: 10, Name: "Carrots Bundle", Image: "🥕", Category: "Vegetables", Size: "1 lb", Price: 1.64, StorePrices: []model.StorePrice{
		sp("Costco", 1.64), sp("Walmart", 1.74), sp("Aldi", 2.59), sp("Meijer's", 2.89), sp("Kroger", 2.99),
	}},
	{ID: 11, Name: "Sparkling Water", Image: "💧", Category: "Drinks", Size: "33.8 fl oz", Price: 2.19, StorePrices: []model.StorePrice{
		sp("Walmart", 2.19), sp("Aldi", 3.49), sp("Meijer's", 3.79), sp("Kroger", 3.89),
	}},
	{ID: 12, Name: "Whole Wheat Bread", Image: "🍞", Category: "Bakery", Size: "1 loaf", Price: 2.19, StorePrices: []model.StorePrice{
		sp("Costco", 5.19), sp("Walmart", 2.19), sp("Aldi", 3.89), sp("Meijer's", 4.99), sp("Kroger", 3.79),
	}},
	{ID: 13, Name: "Free Range Eggs", Image: "🥚", Category: "Dairy", Size: "12 count", Price: 3.29, StorePrices: []model.StorePrice{
		sp("Costco", 3.29), sp("Walmart", 3.49), sp("Aldi", 5.19), sp("Meijer's", 5.79), sp("Kroger", 5.89),
	}},
	{ID: 14, Name: "Premium Rice", Image: "🍚", Category: "Pantry", Size: "5 lb", Price: 4.94, StorePrices: []model.StorePrice{
		sp("Costco", 4.94), sp("Walmart", 5.14), sp("Aldi", 7.89), sp("Kroger", 8.79),
	}},
	{ID: 15, Name: "Fresh Tomatoes", Image: "🍅", Category: "Vegetables", Size: "1 lb", Price: 2.47, StorePrices: []model.StorePrice{
		sp("Costco", 2.47), sp("Walmart", 2.67), sp("Aldi", 3.94), sp("Meijer's", 4.29), sp("Kroger", 4.39),
	}},
	{ID: 16, Name: "Organic Oranges", Image: "🍊", Category: "Fruits", Size: "1 lb", Price: 2.19, StorePrices: []model.StorePrice{
		sp("Walmart", 2.19), sp("Aldi", 3.49), sp("Meijer's", 3.79), sp("Kroger", 3.89),
	}},
	{ID: 17, Name: "Fresh Salmon Fillet", Image: "🐟", Category: "Meat", Size: "1 lb", Price: 8.99, StorePrices: []model.StorePrice{
		sp("Costco", 8.99), sp("Walmart", 9.99), sp("Aldi", 11.49), sp("Meijer's", 12.99), sp("Kroger", 13.49),
	}},
	{ID: 18, Name: "Ground Beef", Image: "🥩", Category: "Meat", Size: "1 lb", Price: 4.99, StorePrices: []model.StorePrice{
		sp("Costco", 4.99), sp("Walmart", 5.49), sp("Aldi", 6.99), sp("Meijer's", 7.49), sp("Kroger", 7.99),
	}},
	{ID: 19, Name: "Chicken Breast", Image: "🍗", Category: "Meat", Size: "1 lb", Price: 3.99, StorePrices: []model.StorePrice{
		sp("Costco", 3.99), sp("Walmart", 4.49), sp("Aldi", 5.99), sp("Meijer's", 6.49), sp("Kroger", 6.99),
	}},
	{ID: 20, Name: "Fresh Shrimp", Image: "🦐", Category: "Meat", Size: "1 lb", Price: 7.49, StorePrices: []model.StorePrice{
		sp("Walmart", 7.49), sp("Aldi", 8.99), sp("Meijer's", 9.99), sp("Kroger", 10.49),
	}},
	{ID: 21, Name: "Pork Chops", Image: "🥓", Category: "Meat", Size: "1 lb", Price: 5.49, StorePrices: []model.StorePrice{
		sp("Costco", 5.49), sp("Walmart", 6.49), sp("Aldi", 7.99), sp("Meijer's", 8.49), sp("Kroger", 8.99),
	}},
	{ID: 22, Name: "Tuna Steaks", Image: "🐟", Category: "Meat", Size: "1 lb", Price: 9.99, StorePrices: []model.StorePrice{
		sp("Costco", 9.99), sp("Walmart", 11.49), sp("Aldi", 12.99), sp("Kroger", 13.99),
	}},
	{ID: 23, Name: "Cooking Knife Set", Image: "🔪", Category: "Utensils", Size: "5 pieces", Price: 24.99, StorePrices: []model.StorePrice{
		sp("Walmart", 24.99), sp("Aldi", 29.99), sp("Meijer's", 34.99), sp("Kroger", 32.99),
	}},
	{ID: 24, Name: "Non-Stick Frying Pan", Image: "🍳", Category: "Utensils", Size: "10 inch", Price: 19.99, StorePrices: []model.StorePrice{
		sp("Costco", 19.99), sp("Walmart", 22.99), sp("Aldi", 27.99), sp("Meijer's", 29.99), sp("Kroger", 28.99),
	}},
	{ID: 25, Name: "Cutting Board Set", Image: "🪵", Category: "Utensils", Size: "3 pieces", Price: 14.99, StorePrices: []model.StorePrice{
		sp("Walmart", 14.99), sp("Aldi", 18.99), sp("Meijer's", 19.99), sp("Kroger", 21.99),
	}},
	{ID: 26, Name: "Mixing Bowl Set", Image: "🥣", Category: "Utensils", Size: "5 pieces", Price: 16.99, StorePrices: []model.StorePrice{
		sp("Costco", 16.99), sp("Walmart", 19.99), sp("Aldi", 24.99), sp("Kroger", 26.99),
	}},
	{ID: 27, Name: "Spatula Set", Image: "🥄", Category: "Utensils", Size: "3 pieces", Price: 9.99, StorePrices: []model.StorePrice{
		sp("Walmart", 9.99), sp("Aldi", 12.99), sp("Meijer's", 13.99), sp("Kroger", 14.99),
	}},
	{ID: 28, Name: "Fresh Grapes", Image: "🍇", Category: "Fruits", Size: "1 lb", Price: 3.49, StorePrices: []model.StorePrice{
		sp("Costco", 3.49), sp("Walmart", 3.99), sp("Aldi", 4.49), sp("Meijer's", 4.99), sp("Kroger", 5.29),
	}},
	{ID: 29, Name: "Blueberries", Image: "🫐", Category: "Fruits", Size: "6 oz", Price: 4.99, StorePrices: []model.StorePrice{
		sp("Costco", 4.99), sp("Walmart", 5.49), sp("Aldi", 6.99), sp("Meijer's", 7.49), sp("Kroger", 7.99),
	}},
	{ID: 30, Name: "Fresh Pineapple", Image: "🍍", Category: "Fruits", Size: "1 each", Price: 2.99, StorePrices: []model.StorePrice{
		sp("Costco", 2.99), sp("Walmart", 3.49), sp("Aldi", 3.99), sp("Meijer's", 4.49), sp("Kroger", 4.79),
	}},
	{ID: 31, Name: "Fresh Broccoli", Image: "🥦", Category: "Vegetables", Size: "1 lb", Price: 1.99, StorePrices: []model.StorePrice{
		sp("Costco", 1.99), sp("Walmart", 2.29), sp("Aldi", 2.79), sp("Meijer's", 3.09), sp("Kroger", 3.29),
	}},
	{ID: 32, Name: "Bell Peppers", Image: "🫑", Category: "Vegetables", Size: "3 pack", Price: 2.49, StorePrices: []model.StorePrice{
		sp("Costco", 2.49), sp("Walmart", 2.99), sp("Aldi", 3.49), sp("Meijer's", 3.99), sp("Kroger", 4.19),
	}},
	{ID: 33, Name: "Cauliflower", Image: "🥬", Category: "Vegetables", Size: "1 head", Price: 2.79, StorePrices: []model.StorePrice{
		sp("Costco", 2.79), sp("Walmart", 3.29), sp("Aldi", 3.79), sp("Meijer's", 4.29), sp("Kroger", 4.49),
	}},
	{ID: 34, Name: "Chicken Wings", Image: "🍗", Category: "Meat", Size: "2 lb", Price: 4.99, StorePrices: []model.StorePrice{
		sp("Costco", 4.99), sp("Walmart", 5.99), sp("Aldi", 6.99), sp("Meijer's", 7.49), sp("Kroger", 7.99),
	}},
	{ID: 35, Name: "Chicken Thighs", Image: "🍗", Category: "Meat", Size: "1 lb", Price: 3.49, StorePrices: []model.StorePrice{
		sp("Costco", 3.49), sp("Walmart", 3.99), sp("Aldi", 4.99), sp("Meijer's", 5.49), sp("Kroger", 5.99),
	}},
	{ID: 36, Name: "Organic Chicken Breast", Image: "🍗", Category: "Meat", Size: "1 lb", Price: 5.99, StorePrices: []model.StorePrice{
		sp("Costco", 5.99), sp("Walmart", 6.99), sp("Aldi", 7.99), sp("Meijer's", 8.49), sp("Kroger", 8.99),
	}},
	{ID: 37, Name: "Fresh Crabs", Image: "🦀", Category: "Meat", Size: "1 lb", Price: 12.99, StorePrices: []model.StorePrice{
		sp("Costco", 12.99), sp("Walmart", 14.99), sp("Aldi", 16.99), sp("Meijer's", 17.99), sp("Kroger", 18.99),
	}},
	{ID: 38, Name: "Fresh Mushrooms", Image: "🍄", Category: "Vegetables", Size: "8 oz", Price: 2.99, StorePrices: []model.StorePrice{
		sp("Costco", 2.99), sp("Walmart", 3.49), sp("Aldi", 3.99), sp("Meijer's", 4.49), sp("Kroger", 4.79),
	}},
	{ID: 39, Name: "Fresh Cucumber", Image: "🥒", Category: "Vegetables", Size: "1 lb", Price: 1.49, StorePrices: []model.StorePrice{
		sp("Costco", 1.49), sp("Walmart", 1.79), sp("Aldi", 2.19), sp("Meijer's", 2.49), sp("Kroger", 2.69),
	}},
	{ID: 40, Name: "Yellow Onions", Image: "🧅", Category: "Vegetables", Size: "3 lb", Price: 1.29, StorePrices: []model.StorePrice{
		sp("Costco", 1.29), sp("Walmart", 1.59), sp("Aldi", 1.99), sp("Meijer's", 2.29), sp("Kroger", 2.49),
	}},
	{ID: 41, Name: "Russet Potatoes", Image: "🥔", Category: "Vegetables", Size: "5 lb", Price: 2.99, StorePrices: []model.StorePrice{
		sp("Costco", 2.99), sp("Walmart", 3.49), sp("Aldi", 3.99), sp("Meijer's", 4.49), sp("Kroger", 4.79),
	}},
	{ID: 42, Name: "Fresh Avocado", Image: "🥑", Category: "Fruits", Size: "1 each", Price: 1.99, StorePrices: []model.StorePrice{
		sp("Costco", 1.99), sp("Walmart", 2.29), sp("Aldi", 2.79), sp("Meijer's", 3.09), sp("Kroger", 3.29),
	}},
	{ID: 43, Name: "Jasmine Rice Bag", Image: "🍚", Category: "Pantry", Size: "10 lb", Price: 6.99, StorePrices: []model.StorePrice{
		sp("Costco", 6.99), sp("Walmart", 7.99), sp("Aldi", 8.99), sp("Meijer's", 9.49), sp("Kroger", 9.99),
	}},
	{ID: 44, Name: "Instant Noodles Pack", Image: "🍜", Category: "Pantry", Size: "12 pack", Price: 3.99, StorePrices: []model.StorePrice{
		sp("Costco", 3.99), sp("Walmart", 4.49), sp("Aldi", 4.99), sp("Meijer's", 5.49), sp("Kroger", 5.99),
	}},
	{ID: 45, Name: "All-Purpose Flour", Image: "🌾", Category: "Pantry", Size: "5 lb", Price: 2.99, StorePrices: []model.StorePrice{
		sp("Costco", 2.99), sp("Walmart", 3.49), sp("Aldi", 3.99), sp("Meijer's", 4.29), sp("Kroger", 4.49),
	}},
	{ID: 46, Name: "Olive Oil", Image: "🫒", Category: "Pantry", Size: "33.8 fl oz", Price: 7.99, StorePrices: []model.StorePrice{
		sp("Costco", 7.99), sp("Walmart", 8.99), sp("Aldi", 9.99), sp("Meijer's", 10.49), sp("Kroger", 10.99),
	}},
	{ID: 47, Name: "Canned Beans", Image: "🥫", Category: "Pantry", Size: "15 oz", Price: 1.49, StorePrices: []model.StorePrice{
		sp("Costco", 1.49), sp("Walmart", 1.79), sp("Aldi", 1.99), sp("Meijer's", 2.29), sp("Kroger", 2.49),
	}},
	{ID: 48, Name: "Royal Sona Masoori Rice Bag", Image: "🍚", Category: "Pantry", Size: "25 lb", Price: 12.99, StorePrices: []model.StorePrice{
		sp("Costco", 12.99), sp("Walmart", 14.99), sp("Aldi", 15.99), sp("Meijer's", 16.99), sp("Kroger", 17.99),
	}},
	{ID: 49, Name: "Premium Beer 6-Pack", Image: "🍺", Category: "Drinks", Size: "6 bottles", Price: 8.99, StorePrices: []model.StorePrice{
		sp("Costco", 8.99), sp("Walmart", 9.99), sp("Aldi", 10.99), sp("Meijer's", 11.49), sp("Kroger", 11.99),
	}},
	{ID: 50, Name: "Red Wine Bottle", Image: "🍷", Category: "Drinks", Size: "750 ml", Price: 12.99, StorePrices: []model.StorePrice{
		sp("Costco", 12.99), sp("Walmart", 14.99), sp("Aldi", 15.99), sp("Meijer's", 16.99), sp("Kroger", 17.99),
	}},
	{ID: 51, Name: "White Wine Bottle", Image: "🥂", Category: "Drinks", Size: "750 ml", Price: 11.99, StorePrices: []model.StorePrice{
		sp("Costco", 11.99), sp("Walmart", 13.99), sp("Aldi", 14.99), sp("Meijer's", 15.99), sp("Kroger", 16.99),
	}},
	{ID: 52, Name: "Premium Whiskey", Image: "🥃", Category: "Drinks", Size: "750 ml", Price: 24.99, StorePrices: []model.StorePrice{
		sp("Costco", 24.99), sp("Walmart", 27.99), sp("Aldi", 29.99), sp("Meijer's", 31.99), sp("Kroger", 32.99),
	}},
	{ID: 53, Name: "Tequila Bottle", Image: "🍸", Category: "Drinks", Size: "750 ml", Price: 19.99, StorePrices: []model.StorePrice{
		sp("Costco", 19.99), sp("Walmart", 22.99), sp("Aldi", 24.99), sp("Meijer's", 26.99), sp("Kroger", 27.99),
	}},
	{ID: 54, Name: "Vodka Bottle", Image: "🍸", Category: "Drinks", Size: "750 ml", Price: 16.99, StorePrices: []model.StorePrice{
		sp("Costco", 16.99), sp("Walmart", 18.99), sp("Aldi", 19.99), sp("Meijer's", 21.99), sp("Kroger", 22.99),
	}},
	{ID: 55, Name: "Rum Bottle", Image: "🥃", Category: "Drinks", Size: "750 ml", Price: 17.99, StorePrices: []model.StorePrice{
		sp("Costco", 17.99), sp("Walmart", 19.99), sp("Aldi", 21.99), sp("Meijer's", 22.99), sp("Kroger", 23.99),
	}},
	{ID: 56, Name: "Gin Bottle", Image: "🍸", Category: "Drinks", Size: "750 ml", Price: 18.99, StorePrices: []model.StorePrice{
		sp("Costco", 18.99), sp("Walmart", 20.99), sp("Aldi", 22.99), sp("Meijer's", 23.99), sp("Kroger", 24.99),
	}},
	{ID: 57, Name: "Champagne Bottle", Image: "🍾", Category: "Drinks", Size: "750 ml", Price: 19.99, StorePrices: []model.StorePrice{
		sp("Costco", 19.99), sp("Walmart", 22.99), sp("Aldi", 24.99), sp("Meijer's", 25.99), sp("Kroger", 26.99),
	}},
	{ID: 58, Name: "Craft Beer 12-Pack", Image: "🍺", Category: "Drinks", Size: "12 bottles", Price: 15.99, StorePrices: []model.StorePrice{
		sp("Costco", 15.99), sp("Walmart", 17.99), sp("Aldi", 18.99), sp("Meijer's", 19.99), sp("Kroger", 20.99),
	}},
	{ID: 59, Name: "Chocolate Chip Cookies", Image: "🍪", Category: "Bakery", Size: "1 pack", Price: 3.99, StorePrices: []model.StorePrice{
		sp("Costco", 3.99), sp("Walmart", 4.49), sp("Aldi", 4.99), sp("Meijer's", 5.49), sp("Kroger", 5.99),
	}},
	{ID: 60, Name: "Fresh Croissants", Image: "🥐", Category: "Bakery", Size: "6 pieces", Price: 4.99, StorePrices: []model.StorePrice{
		sp("Costco", 4.99), sp("Walmart", 5.99), sp("Aldi", 6.49), sp("Meijer's", 6.99), sp("Kroger", 7.49),
	}},
}
