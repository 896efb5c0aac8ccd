package domain

// DemoRecords is the hand-authored fallback dataset used when no valid
// records are obtained from Movebank. It covers all six taxa with one
// migration track each, so a generated report is never empty and the
// legend always has something to count.
func DemoRecords() []EventRecord {
	return []EventRecord{
		// Arctic Tern (bird), North Atlantic southbound.
		{Lat: 71.0, Lon: -8.0, Taxon: TaxonBird, Species: "Arctic Tern", Timestamp: "2024-01-15T10:00:00Z", IndividualID: "tern_001"},
		{Lat: 65.0, Lon: -18.0, Taxon: TaxonBird, Species: "Arctic Tern", Timestamp: "2024-03-01T12:00:00Z", IndividualID: "tern_001"},
		{Lat: 55.0, Lon: -25.0, Taxon: TaxonBird, Species: "Arctic Tern", Timestamp: "2024-05-15T14:00:00Z", IndividualID: "tern_001"},
		{Lat: 40.0, Lon: -35.0, Taxon: TaxonBird, Species: "Arctic Tern", Timestamp: "2024-06-01T16:00:00Z", IndividualID: "tern_001"},
		{Lat: 20.0, Lon: -45.0, Taxon: TaxonBird, Species: "Arctic Tern", Timestamp: "2024-07-15T18:00:00Z", IndividualID: "tern_001"},

		// Gray Whale (mammal), Alaska to Baja.
		{Lat: 60.0, Lon: -165.0, Taxon: TaxonMammal, Species: "Gray Whale", Timestamp: "2024-01-15T08:00:00Z", IndividualID: "whale_001"},
		{Lat: 55.0, Lon: -155.0, Taxon: TaxonMammal, Species: "Gray Whale", Timestamp: "2024-02-15T10:00:00Z", IndividualID: "whale_001"},
		{Lat: 45.0, Lon: -125.0, Taxon: TaxonMammal, Species: "Gray Whale", Timestamp: "2024-04-01T12:00:00Z", IndividualID: "whale_001"},
		{Lat: 35.0, Lon: -120.0, Taxon: TaxonMammal, Species: "Gray Whale", Timestamp: "2024-05-15T14:00:00Z", IndividualID: "whale_001"},
		{Lat: 25.0, Lon: -115.0, Taxon: TaxonMammal, Species: "Gray Whale", Timestamp: "2024-07-15T16:00:00Z", IndividualID: "whale_001"},

		// Loggerhead Turtle (reptile), Atlantic coast to Caribbean.
		{Lat: 30.0, Lon: -80.0, Taxon: TaxonReptile, Species: "Loggerhead Turtle", Timestamp: "2024-02-01T09:00:00Z", IndividualID: "turtle_001"},
		{Lat: 28.0, Lon: -75.0, Taxon: TaxonReptile, Species: "Loggerhead Turtle", Timestamp: "2024-03-15T11:00:00Z", IndividualID: "turtle_001"},
		{Lat: 25.0, Lon: -70.0, Taxon: TaxonReptile, Species: "Loggerhead Turtle", Timestamp: "2024-05-01T13:00:00Z", IndividualID: "turtle_001"},
		{Lat: 20.0, Lon: -65.0, Taxon: TaxonReptile, Species: "Loggerhead Turtle", Timestamp: "2024-06-10T15:00:00Z", IndividualID: "turtle_001"},
		{Lat: 15.0, Lon: -60.0, Taxon: TaxonReptile, Species: "Loggerhead Turtle", Timestamp: "2024-07-20T17:00:00Z", IndividualID: "turtle_001"},

		// Bluefin Tuna (fish), mid-Atlantic.
		{Lat: 45.0, Lon: -50.0, Taxon: TaxonFish, Species: "Atlantic Bluefin Tuna", Timestamp: "2024-01-10T08:00:00Z", IndividualID: "tuna_001"},
		{Lat: 40.0, Lon: -45.0, Taxon: TaxonFish, Species: "Atlantic Bluefin Tuna", Timestamp: "2024-02-20T10:00:00Z", IndividualID: "tuna_001"},
		{Lat: 35.0, Lon: -40.0, Taxon: TaxonFish, Species: "Atlantic Bluefin Tuna", Timestamp: "2024-04-15T12:00:00Z", IndividualID: "tuna_001"},
		{Lat: 30.0, Lon: -35.0, Taxon: TaxonFish, Species: "Atlantic Bluefin Tuna", Timestamp: "2024-06-05T14:00:00Z", IndividualID: "tuna_001"},
		{Lat: 25.0, Lon: -30.0, Taxon: TaxonFish, Species: "Atlantic Bluefin Tuna", Timestamp: "2024-07-25T16:00:00Z", IndividualID: "tuna_001"},

		// European Tree Frog (amphibian), Low Countries.
		{Lat: 52.0, Lon: 5.0, Taxon: TaxonAmphibian, Species: "European Tree Frog", Timestamp: "2024-03-01T08:00:00Z", IndividualID: "frog_001"},
		{Lat: 51.5, Lon: 4.5, Taxon: TaxonAmphibian, Species: "European Tree Frog", Timestamp: "2024-04-01T10:00:00Z", IndividualID: "frog_001"},
		{Lat: 51.0, Lon: 4.0, Taxon: TaxonAmphibian, Species: "European Tree Frog", Timestamp: "2024-05-01T12:00:00Z", IndividualID: "frog_001"},
		{Lat: 50.5, Lon: 3.5, Taxon: TaxonAmphibian, Species: "European Tree Frog", Timestamp: "2024-06-01T14:00:00Z", IndividualID: "frog_001"},
		{Lat: 50.0, Lon: 3.0, Taxon: TaxonAmphibian, Species: "European Tree Frog", Timestamp: "2024-07-01T16:00:00Z", IndividualID: "frog_001"},

		// Monarch Butterfly (insect), Midwest to Mexico.
		{Lat: 50.0, Lon: -95.0, Taxon: TaxonInsect, Species: "Monarch Butterfly", Timestamp: "2024-02-15T08:00:00Z", IndividualID: "monarch_001"},
		{Lat: 45.0, Lon: -90.0, Taxon: TaxonInsect, Species: "Monarch Butterfly", Timestamp: "2024-03-30T10:00:00Z", IndividualID: "monarch_001"},
		{Lat: 40.0, Lon: -85.0, Taxon: TaxonInsect, Species: "Monarch Butterfly", Timestamp: "2024-05-15T12:00:00Z", IndividualID: "monarch_001"},
		{Lat: 35.0, Lon: -100.0, Taxon: TaxonInsect, Species: "Monarch Butterfly", Timestamp: "2024-06-20T14:00:00Z", IndividualID: "monarch_001"},
		{Lat: 25.0, Lon: -105.0, Taxon: TaxonInsect, Species: "Monarch Butterfly", Timestamp: "2024-07-30T16:00:00Z", IndividualID: "monarch_001"},
	}
}
