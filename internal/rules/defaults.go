package rules

import "github.com/shopspring/decimal"

// Default returns the built-in rule tables. A rules.yaml file found by the
// Store overrides individual tables; anything not overridden keeps these
// values.
func Default() *Ruleset {
	return &Ruleset{
		ExpenseCategories: []string{
			"Dining",
			"Entertainment",
			"Gas & Auto",
			"Gifts",
			"Recreation",
			"Education",
			"Groceries",
			"Health & Fitness",
			"Household",
			"Subscriptions",
			"Phone",
			"Rent",
			"Shopping",
			"Student Loan",
			"Travel",
			"Car Payment",
			"Utilities",
			"Other Expense",
		},
		IncomeCategories: []string{
			"Salary",
			"Interest",
			"Refund",
			"Gift",
			"Other Income",
		},

		DefaultCategory: "Other Expense",

		StoreExact: map[string]string{
			"tsq":  "Times Square",
			"sq":   "Square",
			"pypl": "PayPal",
			"amzn": "Amazon",
		},

		// Most-specific patterns first: "costco gas" must come before
		// "costco", "uber eats" before "uber".
		StorePatterns: []StorePattern{
			// Groceries & retail
			{"costco gas", "Costco Gas"},
			{"target", "Target"},
			{"walmart", "Walmart"},
			{"costco", "Costco"},
			{"sam's club", "Sam's Club"},
			{"sams club", "Sam's Club"},
			{"whole foods", "Whole Foods"},
			{"trader joe", "Trader Joe's"},
			{"aldi", "Aldi"},
			{"kroger", "Kroger"},
			{"publix", "Publix"},
			{"safeway", "Safeway"},

			// Online shopping
			{"amazon", "Amazon"},
			{"amzn", "Amazon"},
			{"ebay", "eBay"},
			{"etsy", "Etsy"},

			// Fast food
			{"mcdonald", "McDonald's"},
			{"burger king", "Burger King"},
			{"wendy", "Wendy's"},
			{"taco bell", "Taco Bell"},
			{"chipotle", "Chipotle"},
			{"subway", "Subway"},
			{"panera", "Panera Bread"},
			{"chick-fil-a", "Chick-fil-A"},
			{"chick fil a", "Chick-fil-A"},
			{"kfc", "KFC"},
			{"popeyes", "Popeyes"},

			// Coffee & restaurants
			{"starbucks", "Starbucks"},
			{"dunkin", "Dunkin'"},
			{"panda express", "Panda Express"},
			{"olive garden", "Olive Garden"},
			{"applebee", "Applebee's"},
			{"red lobster", "Red Lobster"},
			{"buffalo wild", "Buffalo Wild Wings"},

			// Gas stations
			{"shell", "Shell"},
			{"chevron", "Chevron"},
			{"exxon", "Exxon"},
			{"mobil", "Mobil"},
			{"texaco", "Texaco"},
			{"circle k", "Circle K"},
			{"7-eleven", "7-Eleven"},
			{"7 eleven", "7-Eleven"},
			// "bp" is short enough to appear inside other names; keep it
			// after the longer station patterns.
			{"bp", "BP"},

			// Subscriptions & services
			{"netflix", "Netflix"},
			{"spotify", "Spotify"},
			{"hulu", "Hulu"},
			{"disney", "Disney+"},
			{"apple.com/bill", "Apple"},
			{"apple music", "Apple Music"},
			{"icloud", "iCloud"},
			{"dropbox", "Dropbox"},
			{"google storage", "Google One"},

			// Transportation & delivery
			{"uber eats", "Uber Eats"},
			{"doordash", "DoorDash"},
			{"grubhub", "GrubHub"},
			{"uber", "Uber"},
			{"lyft", "Lyft"},

			// Phone / internet
			{"verizon", "Verizon"},
			{"at&t", "AT&T"},
			{"t-mobile", "T-Mobile"},
			{"sprint", "Sprint"},
			{"xfinity", "Xfinity"},
			{"comcast", "Comcast"},

			// Pharmacies & health
			{"cvs", "CVS"},
			{"walgreens", "Walgreens"},
			{"rite aid", "Rite Aid"},
			{"pharmacy", "Pharmacy"},

			// Fitness
			{"planet fitness", "Planet Fitness"},
			{"la fitness", "LA Fitness"},
			{"24 hour", "24 Hour Fitness"},
		},

		CategorySynonyms: map[string]string{
			"dining out":              "Dining",
			"fun money":               "Entertainment",
			"fun money/entertainment": "Entertainment",
			"golf":                    "Recreation",
			"grad school":             "Education",
			"home & hygiene":          "Household",
			"netflix":                 "Subscriptions",
			"spotify":                 "Subscriptions",
			"phone storage":           "Subscriptions",
			"other expense":           "Other Expense",
			"other income":            "Other Income",
		},

		StoreCategories: []CategoryRule{
			// "costco gas" must be checked before the generic grocery rule
			// catches "costco".
			{[]string{"costco gas"}, "Gas & Auto"},
			{[]string{"target", "walmart", "costco", "whole foods", "trader joe", "kroger", "safeway", "aldi", "publix"}, "Groceries"},
			{[]string{"mcdonald", "burger king", "taco bell", "chipotle", "subway", "kfc", "wendy", "chick-fil-a", "popeyes"}, "Dining"},
			{[]string{"starbucks", "dunkin", "restaurant", "cafe", "coffee", "pizza", "panera"}, "Dining"},
			{[]string{"shell", "chevron", "exxon", "mobil", "texaco", "bp", "gas", "fuel"}, "Gas & Auto"},
			{[]string{"netflix", "spotify", "hulu", "disney", "apple music", "icloud", "dropbox"}, "Subscriptions"},
			{[]string{"amazon", "ebay", "etsy"}, "Shopping"},
			{[]string{"cvs", "walgreens", "pharmacy", "gym", "fitness"}, "Health & Fitness"},
			{[]string{"verizon", "at&t", "t-mobile", "sprint", "xfinity", "comcast"}, "Phone"},
			{[]string{"uber", "lyft"}, "Travel"},
		},

		KeywordCategories: []CategoryRule{
			{[]string{"interest"}, "Interest"},
			{[]string{"payroll", "salary", "direct deposit"}, "Salary"},
			{[]string{"rent", "apartment", "housing"}, "Rent"},
			{[]string{"electric", "water", "utility", "gas bill", "internet"}, "Utilities"},
			{[]string{"student loan", "navient", "great lakes", "fedloan"}, "Student Loan"},
			{[]string{"auto loan", "car payment", "vehicle loan"}, "Car Payment"},
		},

		CategoryTags: map[string][]string{
			"Dining":           {"restaurant", "food", "lunch", "dinner", "breakfast"},
			"Entertainment":    {"movie", "concert", "show", "game", "fun"},
			"Gas & Auto":       {"fuel", "gas", "car", "maintenance", "auto"},
			"Gifts":            {"birthday", "holiday", "anniversary", "present"},
			"Recreation":       {"golf", "sports", "hobby", "activity", "game"},
			"Education":        {"school", "tuition", "books", "course", "learning"},
			"Groceries":        {"food", "household", "weekly", "shopping"},
			"Health & Fitness": {"gym", "health", "medical", "fitness", "doctor"},
			"Household":        {"home", "supplies", "cleaning", "hygiene"},
			"Subscriptions":    {"monthly", "streaming", "app", "service"},
			"Phone":            {"mobile", "cellular", "phone", "plan"},
			"Rent":             {"housing", "apartment", "home", "monthly"},
			"Shopping":         {"retail", "online", "clothes", "amazon"},
			"Student Loan":     {"loan", "education", "debt", "payment"},
			"Travel":           {"trip", "vacation", "flight", "hotel", "airbnb"},
			"Car Payment":      {"auto", "vehicle", "loan", "car"},
			"Utilities":        {"electric", "water", "gas", "internet", "bill"},
			"Salary":           {"income", "paycheck", "work", "employment"},
			"Interest":         {"bank", "savings", "investment"},
			"Refund":           {"return", "reimbursement"},
			"Gift":             {"present", "money"},
		},

		GolfKeywords:        []string{"golf", "pga", "course", "tee time"},
		TravelKeywords:      []string{"airline", "hotel", "airbnb", "booking.com", "expedia"},
		LargePurchaseAmount: decimal.NewFromInt(500),
	}
}
