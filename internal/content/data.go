package content

var articles = []Article{
	{
		Slug:     "the-science-of-refreshment",
		Title:    "The Science Behind Ultimate Refreshment",
		Excerpt:  "Ever wonder what makes a drink truly refreshing? We dive deep into the chemistry of hydration and flavor.",
		Body: "Have you ever wondered what makes a drink truly refreshing? It's not just about being " +
			"cold or sweet: temperature stimulates thermoreceptors, carbonation wakes up your taste " +
			"buds, and the balance of sweet, tart, and bitter does the rest. Our Classic Lemon-Lime " +
			"is engineered to hit all three. Serve between 35-40F for maximum effect.",
		Category: "Science",
		Author:   "Dr. Duck",
		Date:     "2024-11-10",
		ReadTime: "5 min read",
		ImageURL: "/placeholder.svg",
	},
	{
		Slug:     "5-wild-mocktail-recipes",
		Title:    "5 Wild Mocktail Recipes Using Rubber Ducky Drinks",
		Excerpt:  "Transform your Rubber Ducky drinks into incredible mocktails that'll blow your mind (and your taste buds)!",
		Body: "Ready to take your Rubber Ducky experience to the next level? From the Tropical Ducky " +
			"Paradise (one can of Classic, pineapple chunks, coconut cream) to the Citrus Storm, " +
			"these five mixes turn a cold can into a party pour.",
		Category: "Recipes",
		Author:   "Chef Mallard",
		Date:     "2024-10-28",
		ReadTime: "7 min read",
		ImageURL: "/placeholder.svg",
	},
	{
		Slug:     "sustainable-sipping",
		Title:    "Sustainable Sipping: Our Packaging Story",
		Excerpt:  "How we cut our packaging footprint without cutting corners on fizz.",
		Body: "Every can we ship is infinitely recyclable aluminum, and our 4-pack carriers moved to " +
			"fiber in 2024. Here's what changed, what it cost, and what's next on the roadmap.",
		Category: "Company",
		Author:   "The Flock",
		Date:     "2024-09-15",
		ReadTime: "4 min read",
		ImageURL: "/placeholder.svg",
	},
}

var recipes = []Recipe{
	{ID: "classic-serve", Title: "Classic Serve", Description: "The perfect simple pour", PrepTime: "2 min", Servings: "1", Difficulty: "Easy"},
	{ID: "frozen-margarita", Title: "Frozen Margarita", Description: "Blend with ice, add lime garnish", PrepTime: "5 min", Servings: "2", Difficulty: "Easy"},
	{ID: "ducky-mocktail", Title: "Ducky Mocktail", Description: "Mix with sparkling water, fruit garnish", PrepTime: "3 min", Servings: "1", Difficulty: "Easy"},
	{ID: "pool-party-punch", Title: "Pool Party Punch", Description: "Large batch recipe perfect for parties", PrepTime: "10 min", Servings: "8", Difficulty: "Medium"},
	{ID: "spicy-kick", Title: "Spicy Kick", Description: "Add jalapeno slices, salt rim", PrepTime: "4 min", Servings: "1", Difficulty: "Medium"},
}
