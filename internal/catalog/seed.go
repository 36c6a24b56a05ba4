package catalog

// seedActivities is the built-in catalog used when no catalog file is
// configured. Curated for Guides und Späher (10-13).
var seedActivities = []Activity{
	{
		ID:                "game_001",
		Name:              "Vertrauenskreis",
		Description:       "Die Teilnehmer stehen im Kreis und lassen sich rückwärts fallen, vertrauen darauf, dass sie aufgefangen werden. Dieses Spiel fördert Vertrauen und Gruppenzusammenhalt.",
		Materials:         []string{"Keine besonderen Materialien"},
		DurationMinutes:   15,
		MinParticipants:   8,
		MaxParticipants:   15,
		AgeGroup:          "10-13",
		Location:          "both",
		WeatherDependency: "low",
		Tags:              []string{"vertrauen", "teambuilding", "kreis", "sozial"},
		PedagogicalValue:  "Fördert Vertrauen und Gruppenzusammenhalt",
		Rating:            4.2,
	},
	{
		ID:                "game_002",
		Name:              "Capture the Flag",
		Description:       "Zwei Teams versuchen die Fahne des anderen Teams zu erobern und in ihr eigenes Territorium zu bringen. Strategisches Teamspiel für größere Gruppen.",
		Materials:         []string{"2 Fahnen", "Markierungen für Spielfeld", "Bänder oder Tücher"},
		DurationMinutes:   30,
		MinParticipants:   10,
		MaxParticipants:   20,
		AgeGroup:          "10-13",
		Location:          "outdoor",
		WeatherDependency: "medium",
		Tags:              []string{"strategie", "team", "bewegung", "wettkampf", "outdoor"},
		PedagogicalValue:  "Fördert strategisches Denken und Teamwork",
		Rating:            4.7,
	},
	{
		ID:                "game_003",
		Name:              "Blindes Vertrauen Parcours",
		Description:       "Ein Teilnehmer wird durch einen Parcours geführt, während er die Augen verbunden hat. Der Partner gibt nur verbale Anweisungen.",
		Materials:         []string{"Augenbinden", "Hindernisse", "Seile", "Gegenstände für Parcours"},
		DurationMinutes:   20,
		MinParticipants:   6,
		MaxParticipants:   16,
		AgeGroup:          "10-13",
		Location:          "both",
		WeatherDependency: "low",
		Tags:              []string{"vertrauen", "kommunikation", "parcours", "teambuilding"},
		PedagogicalValue:  "Stärkt Vertrauen und Kommunikationsfähigkeiten",
		Rating:            4.0,
	},
	{
		ID:                "game_004",
		Name:              "Geschichten erfinden",
		Description:       "Die Gruppe erfindet gemeinsam eine Geschichte, wobei jeder Teilnehmer einen Satz beiträgt. Fördert Kreativität und Zuhören.",
		Materials:         []string{"Eventuell Papier und Stifte"},
		DurationMinutes:   25,
		MinParticipants:   5,
		MaxParticipants:   12,
		AgeGroup:          "10-13",
		Location:          "indoor",
		WeatherDependency: "low",
		Tags:              []string{"kreativität", "sprache", "zuhören", "ruhig", "indoor"},
		PedagogicalValue:  "Entwickelt Kreativität und Sprachfähigkeiten",
		Rating:            3.8,
	},
	{
		ID:                "game_005",
		Name:              "Menschliche Knoten",
		Description:       "Die Teilnehmer stellen sich in einen Kreis, greifen sich an den Händen und bilden einen 'Knoten', den sie gemeinsam lösen müssen.",
		Materials:         []string{"Keine Materialien erforderlich"},
		DurationMinutes:   15,
		MinParticipants:   6,
		MaxParticipants:   12,
		AgeGroup:          "10-13",
		Location:          "both",
		WeatherDependency: "low",
		Tags:              []string{"problemlösung", "teamwork", "kooperation", "körperkontakt"},
		PedagogicalValue:  "Fördert Problemlösungskompetenzen und Zusammenarbeit",
		Rating:            4.1,
	},
}
