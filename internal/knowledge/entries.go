package knowledge

// entry is one answer in the built-in knowledge base. Keywords are
// lowercase substrings matched against the question.
type entry struct {
	Topic    string
	Keywords []string
	Answer   string
	Source   string
}

var entries = []entry{
	{
		Topic:    "Pfadfindergesetze",
		Keywords: []string{"pfadfindergesetze", "pfadfindergesetz"},
		Answer:   "Die Pfadfindergesetze sind die Grundregeln unseres Zusammenlebens. Sie beschreiben, wie Pfadfinderinnen und Pfadfinder einander und ihrer Umwelt begegnen: hilfsbereit, ehrlich, verlässlich und achtsam.",
		Source:   "Pfadfinder Grundlagen",
	},
	{
		Topic:    "Allzeit bereit",
		Keywords: []string{"allzeit bereit", "wahlspruch"},
		Answer:   "'Allzeit bereit' ist unser Wahlspruch und bedeutet, dass Pfadfinderinnen und Pfadfinder jederzeit bereit sind, anderen zu helfen und Verantwortung zu übernehmen.",
		Source:   "Pfadfinder Grundlagen",
	},
	{
		Topic:    "Pfadfindergruß",
		Keywords: []string{"pfadfindergruß", "pfadfindergruss", "gruß mit drei fingern"},
		Answer:   "Der Pfadfindergruß wird mit drei Fingern gemacht. Die drei Finger stehen für die drei Teile des Pfadfinderversprechens; der Daumen über dem kleinen Finger zeigt, dass die Stärkeren die Schwächeren schützen.",
		Source:   "Pfadfinder Grundlagen",
	},
	{
		Topic:    "Guides und Späher",
		Keywords: []string{"guides und späher", "gusp", "altersstufe"},
		Answer:   "Guides und Späher (GuSp) ist die Altersstufe für 10- bis 13-Jährige. In der Heimstunde arbeiten GuSp in kleinen Gruppen, den Patrullen, und übernehmen Schritt für Schritt Verantwortung füreinander.",
		Source:   "Pfadfinder Grundlagen",
	},
	{
		Topic:    "Heimstunde",
		Keywords: []string{"was ist eine heimstunde"},
		Answer:   "Die Heimstunde ist das wöchentliche Gruppentreffen. Sie verbindet Spiel, gemeinsames Arbeiten an Abzeichen und Projekten und eine kurze Reflexionsrunde am Ende.",
		Source:   "Pfadfinder Grundlagen",
	},
}
