// Package catalog holds the static meal catalog and the daily tip list.
// It is defined exactly once and shared by the plan composer and the
// food-options table exporter.
package catalog

// CategoryOrder fixes the order in which meal categories appear in menus
// and exported tables.
var CategoryOrder = []string{"Breakfast", "Lunch", "Dinner", "Snacks"}

// Categories maps each meal category to its candidate food items.
// Treat as immutable.
var Categories = map[string][]string{
	"Breakfast": {
		"Whole grain cereal", "Egg whites", "Fruit juice", "Greek yogurt", "Oatmeal",
		"Avocado toast", "Smoothie with greens", "Whole grain pancakes",
		"Almond butter on toast", "Chia seeds pudding", "Mixed berries",
		"Scrambled eggs with veggies", "Protein shake", "Nut and seed granola",
		"Quinoa porridge", "Fruit salad", "Cottage cheese", "Breakfast burrito",
		"Sweet potato hash", "Protein-rich smoothie",
	},
	"Lunch": {
		"Grilled chicken salad", "Quinoa and black beans", "Turkey and avocado wrap",
		"Chicken and vegetable stir-fry", "Salmon with quinoa", "Lean beef with veggies",
		"Chickpea and spinach stew", "Grilled tofu and vegetables",
		"Greek salad with chicken", "Whole grain pasta with marinara",
		"Vegetable and lentil soup", "Chicken and sweet potato salad",
		"Tofu and veggie kebabs", "Turkey chili", "Stuffed bell peppers",
		"Chicken and quinoa bowl", "Vegetable curry", "Grilled shrimp with brown rice",
		"Salmon and spinach salad", "Chicken and avocado salad",
	},
	"Dinner": {
		"Grilled salmon with vegetables", "Chicken breast with steamed broccoli",
		"Turkey meatballs with zucchini noodles", "Stuffed bell peppers with quinoa",
		"Baked cod with asparagus", "Vegetable stir-fry with tofu",
		"Beef and vegetable kebabs", "Lentil soup with spinach",
		"Chicken curry with brown rice", "Grilled chicken with sweet potato mash",
		"Vegetarian chili", "Grilled shrimp with mixed vegetables",
		"Baked chicken thighs with Brussels sprouts", "Spaghetti squash with marinara sauce",
		"Stuffed mushrooms with spinach", "Salmon and kale salad",
		"Chicken and vegetable soup", "Baked tofu with broccoli",
		"Beef stew with carrots", "Grilled portobello mushrooms",
	},
	"Snacks": {
		"Almonds and walnuts", "Greek yogurt with honey", "Apple slices with almond butter",
		"Carrot sticks with hummus", "Mixed berries", "Protein bar", "Edamame",
		"Celery with peanut butter", "Cottage cheese with pineapple",
		"Homemade trail mix", "Protein shake", "Vegetable sticks with guacamole",
		"Apple with cheese slices", "Rice cakes with avocado", "Chia pudding",
		"Pumpkin seeds", "Baked sweet potato fries", "Smoothie with protein powder",
		"Hard-boiled eggs", "Low-fat cheese sticks",
	},
}

// DailyTips is the fixed list of daily health and nutrition tips.
var DailyTips = []string{
	"Drink plenty of water throughout the day.",
	"Include a variety of fruits and vegetables in your diet.",
	"Avoid processed foods and opt for whole foods.",
	"Exercise regularly to maintain a healthy weight.",
	"Get enough sleep to support overall health.",
	"Limit sugary drinks and snacks.",
	"Choose lean proteins such as chicken, fish, and beans.",
	"Include healthy fats like nuts, seeds, and avocados in your diet.",
}
