package kb

// aliases maps colloquial terms, brand names, and category members to
// canonical record keys. Every value must be a key in records.
var aliases = map[string]string{
	// Caffeine
	"coffee":     "caffeine",
	"tea":        "caffeine",
	"espresso":   "caffeine",
	"latte":      "caffeine",
	"cappuccino": "caffeine",
	"matcha":     "caffeine",

	// Sushi / raw fish
	"raw fish": "sushi",
	"sashimi":  "sushi",
	"salmon":   "sushi",
	"tuna":     "sushi",
	"poke":     "sushi",
	"ceviche":  "sushi",

	// Hot water
	"hot tub":         "hot springs",
	"sauna":           "hot springs",
	"jacuzzi":         "hot springs",
	"onsen":           "hot springs",
	"mineral springs": "hot springs",
	"spa":             "hot springs",
	"steam room":      "hot springs",
	"hot bath":        "hot springs",

	// Deli meat
	"ham":        "deli meat",
	"turkey":     "deli meat",
	"salami":     "deli meat",
	"prosciutto": "deli meat",
	"cold cuts":  "deli meat",
	"lunch meat": "deli meat",
	"bologna":    "deli meat",
	"pastrami":   "deli meat",
	"pepperoni":  "deli meat",

	// Soft cheese
	"brie":         "soft cheese",
	"camembert":    "soft cheese",
	"feta":         "soft cheese",
	"goat cheese":  "soft cheese",
	"blue cheese":  "soft cheese",
	"queso fresco": "soft cheese",

	// Alcohol
	"wine":      "alcohol",
	"beer":      "alcohol",
	"cocktail":  "alcohol",
	"liquor":    "alcohol",
	"champagne": "alcohol",
	"sake":      "alcohol",
	"margarita": "alcohol",
	"mimosa":    "alcohol",

	// Retinol
	"retin-a":      "retinol",
	"tretinoin":    "retinol",
	"vitamin a":    "retinol",
	"accutane":     "retinol",
	"isotretinoin": "retinol",
	"adapalene":    "retinol",
	"differin":     "retinol",
	"retinoid":     "retinol",

	// Ibuprofen
	"advil":    "ibuprofen",
	"motrin":   "ibuprofen",
	"naproxen": "ibuprofen",
	"aleve":    "ibuprofen",
	"aspirin":  "ibuprofen",
	"nsaid":    "ibuprofen",

	// Tylenol
	"acetaminophen": "tylenol",
	"paracetamol":   "tylenol",

	// Exercise
	"workout": "exercise",
	"gym":     "exercise",
	"running": "exercise",
	"yoga":    "exercise",
	"pilates": "exercise",
	"jogging": "exercise",
	"lifting": "exercise",
	"weights": "exercise",

	// Flying
	"flight":     "flying",
	"airplane":   "flying",
	"travel":     "flying",
	"plane":      "flying",
	"air travel": "flying",

	// Kombucha
	"booch": "kombucha",

	// Eggs
	"runny eggs":    "eggs",
	"raw eggs":      "eggs",
	"sunny side up": "eggs",
	"poached eggs":  "eggs",
	"soft boiled":   "eggs",
	"over easy":     "eggs",

	// Shellfish
	"shrimp":   "shellfish",
	"crab":     "shellfish",
	"lobster":  "shellfish",
	"scallops": "shellfish",
	"oysters":  "shellfish",
	"clams":    "shellfish",
	"mussels":  "shellfish",
	"prawns":   "shellfish",
	"crawfish": "shellfish",

	// Peanuts
	"nuts":          "peanuts",
	"almonds":       "peanuts",
	"cashews":       "peanuts",
	"walnuts":       "peanuts",
	"pistachios":    "peanuts",
	"peanut butter": "peanuts",

	// Green tea
	"black tea": "green tea",
	"oolong":    "green tea",
	"chai":      "green tea",

	// Energy drinks
	"red bull": "energy drinks",
	"monster":  "energy drinks",
	"celsius":  "energy drinks",
	"bang":     "energy drinks",

	// Herbal tea
	"chamomile":      "herbal tea",
	"peppermint tea": "herbal tea",
	"ginger tea":     "herbal tea",
	"raspberry leaf": "herbal tea",

	// Hot dogs
	"frankfurter": "hot dogs",
	"wiener":      "hot dogs",
	"sausage":     "hot dogs",

	// Spicy food
	"spicy":     "spicy food",
	"hot sauce": "spicy food",
	"jalapeno":  "spicy food",
	"sriracha":  "spicy food",

	// Blue pea flower
	"butterfly pea":        "blue pea flower",
	"butterfly pea flower": "blue pea flower",
	"clitoria ternatea":    "blue pea flower",
	"asian pigeonwings":    "blue pea flower",
	"blue tea":             "blue pea flower",

	// Salicylic acid
	"bha":          "salicylic acid",
	"beta hydroxy": "salicylic acid",

	// Glycolic acid
	"aha":           "glycolic acid",
	"alpha hydroxy": "glycolic acid",
	"lactic acid":   "glycolic acid",

	// Vitamin C
	"vitamin c":     "vitamin c serum",
	"ascorbic acid": "vitamin c serum",

	// Sunscreen
	"spf":            "sunscreen",
	"sun protection": "sunscreen",

	// Hair dye
	"hair color":  "hair dye",
	"highlights":  "hair dye",
	"balayage":    "hair dye",
	"bleach hair": "hair dye",

	// Nail polish
	"manicure":      "nail polish",
	"pedicure":      "nail polish",
	"gel nails":     "nail polish",
	"acrylic nails": "nail polish",

	// Botox
	"filler":     "botox",
	"lip filler": "botox",
	"juvederm":   "botox",
	"restylane":  "botox",

	// Self tanner
	"spray tan":   "self tanner",
	"fake tan":    "self tanner",
	"tanning bed": "self tanner",
	"tanning":     "self tanner",

	// Massage
	"prenatal massage": "massage",
	"back rub":         "massage",
	"deep tissue":      "massage",

	// Swimming
	"pool":     "swimming",
	"chlorine": "swimming",
	"ocean":    "swimming",
	"beach":    "swimming",

	// Sleep
	"sleep":         "sleeping position",
	"sleeping":      "sleeping position",
	"back sleeping": "sleeping position",
	"side sleeping": "sleeping position",

	// X-ray
	"radiation":    "x-ray",
	"ct scan":      "x-ray",
	"dental x-ray": "x-ray",
	"mri":          "x-ray",

	// Benadryl
	"diphenhydramine":  "benadryl",
	"antihistamine":    "benadryl",
	"allergy medicine": "benadryl",
	"zyrtec":           "benadryl",
	"claritin":         "benadryl",
	"allegra":          "benadryl",

	// Antidepressants
	"ssri":               "antidepressants",
	"zoloft":             "antidepressants",
	"lexapro":            "antidepressants",
	"prozac":             "antidepressants",
	"wellbutrin":         "antidepressants",
	"sertraline":         "antidepressants",
	"anxiety medication": "antidepressants",

	// CBD / cannabis
	"marijuana": "cbd",
	"weed":      "cbd",
	"cannabis":  "cbd",
	"thc":       "cbd",
	"edibles":   "cbd",
	"pot":       "cbd",

	// Essential oils
	"aromatherapy": "essential oils",
	"lavender oil": "essential oils",
	"diffuser":     "essential oils",

	// Prenatal vitamins
	"prenatal":   "prenatal vitamins",
	"folic acid": "prenatal vitamins",
	"folate":     "prenatal vitamins",

	// Fish oil
	"omega 3": "fish oil",
	"omega-3": "fish oil",
	"dha":     "fish oil",
	"epa":     "fish oil",

	// Cat litter
	"toxoplasmosis": "cat litter",
	"litter box":    "cat litter",
	"kitty litter":  "cat litter",

	// Paint
	"painting":         "paint",
	"nursery painting": "paint",
	"fumes":            "paint",

	// Cleaning
	"bleach":   "cleaning products",
	"windex":   "cleaning products",
	"lysol":    "cleaning products",
	"cleaning": "cleaning products",

	// Bug spray
	"deet":               "bug spray",
	"mosquito repellent": "bug spray",
	"insect repellent":   "bug spray",
	"off spray":          "bug spray",
}
