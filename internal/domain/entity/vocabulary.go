package entity

// Fixed vocabularies offered by the intake form. Empty string means unset;
// submissions with other values are rejected at validation time.

// Activity level constants
const (
	ActivitySedentary = "Sedentary"
	ActivityModerate  = "Moderate"
	ActivityActive    = "Active"
)

// Dietary preference constants
const (
	DietNone       = "None"
	DietVegetarian = "Vegetarian"
	DietVegan      = "Vegan"
	DietKeto       = "Keto"
	DietMeat       = "Meat"
)

// Allergy constants
const (
	AllergyNone    = "None"
	AllergyNuts    = "Nuts"
	AllergyChicken = "Chicken"
	AllergyGluten  = "Gluten"
)

// ActivityLevels is the single source of truth for valid activity levels,
// also used for input validation on submission.
var ActivityLevels = map[string]bool{
	ActivitySedentary: true,
	ActivityModerate:  true,
	ActivityActive:    true,
}

var DietaryPreferences = map[string]bool{
	DietNone:       true,
	DietVegetarian: true,
	DietVegan:      true,
	DietKeto:       true,
	DietMeat:       true,
}

var Allergies = map[string]bool{
	AllergyNone:    true,
	AllergyNuts:    true,
	AllergyChicken: true,
	AllergyGluten:  true,
}

// ValidActivityLevel reports whether v is an allowed activity level.
// Empty string is allowed everywhere: the form fields are optional.
func ValidActivityLevel(v string) bool { return v == "" || ActivityLevels[v] }

func ValidDietaryPreference(v string) bool { return v == "" || DietaryPreferences[v] }

func ValidAllergy(v string) bool { return v == "" || Allergies[v] }
