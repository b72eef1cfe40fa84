package statsapi

import "mlb-score-watcher/internal/domain"

// fallbackTeams returns the static team directory used when the upstream
// directory has never been fetched successfully. IDs are the Stats API team
// identifiers.
func fallbackTeams() []domain.TeamSearchResult {
	return []domain.TeamSearchResult{
		{ID: 108, Name: "Los Angeles Angels", Abbreviation: "LAA", LocationName: "Anaheim"},
		{ID: 109, Name: "Arizona Diamondbacks", Abbreviation: "AZ", LocationName: "Phoenix"},
		{ID: 110, Name: "Baltimore Orioles", Abbreviation: "BAL", LocationName: "Baltimore"},
		{ID: 111, Name: "Boston Red Sox", Abbreviation: "BOS", LocationName: "Boston"},
		{ID: 112, Name: "Chicago Cubs", Abbreviation: "CHC", LocationName: "Chicago"},
		{ID: 113, Name: "Cincinnati Reds", Abbreviation: "CIN", LocationName: "Cincinnati"},
		{ID: 114, Name: "Cleveland Guardians", Abbreviation: "CLE", LocationName: "Cleveland"},
		{ID: 115, Name: "Colorado Rockies", Abbreviation: "COL", LocationName: "Denver"},
		{ID: 116, Name: "Detroit Tigers", Abbreviation: "DET", LocationName: "Detroit"},
		{ID: 117, Name: "Houston Astros", Abbreviation: "HOU", LocationName: "Houston"},
		{ID: 118, Name: "Kansas City Royals", Abbreviation: "KC", LocationName: "Kansas City"},
		{ID: 119, Name: "Los Angeles Dodgers", Abbreviation: "LAD", LocationName: "Los Angeles"},
		{ID: 120, Name: "Washington Nationals", Abbreviation: "WSH", LocationName: "Washington"},
		{ID: 121, Name: "New York Mets", Abbreviation: "NYM", LocationName: "Flushing"},
		{ID: 133, Name: "Athletics", Abbreviation: "ATH", LocationName: "Sacramento"},
		{ID: 134, Name: "Pittsburgh Pirates", Abbreviation: "PIT", LocationName: "Pittsburgh"},
		{ID: 135, Name: "San Diego Padres", Abbreviation: "SD", LocationName: "San Diego"},
		{ID: 136, Name: "Seattle Mariners", Abbreviation: "SEA", LocationName: "Seattle"},
		{ID: 137, Name: "San Francisco Giants", Abbreviation: "SF", LocationName: "San Francisco"},
		{ID: 138, Name: "St. Louis Cardinals", Abbreviation: "STL", LocationName: "St. Louis"},
		{ID: 139, Name: "Tampa Bay Rays", Abbreviation: "TB", LocationName: "St. Petersburg"},
		{ID: 140, Name: "Texas Rangers", Abbreviation: "TEX", LocationName: "Arlington"},
		{ID: 141, Name: "Toronto Blue Jays", Abbreviation: "TOR", LocationName: "Toronto"},
		{ID: 142, Name: "Minnesota Twins", Abbreviation: "MIN", LocationName: "Minneapolis"},
		{ID: 143, Name: "Philadelphia Phillies", Abbreviation: "PHI", LocationName: "Philadelphia"},
		{ID: 144, Name: "Atlanta Braves", Abbreviation: "ATL", LocationName: "Atlanta"},
		{ID: 145, Name: "Chicago White Sox", Abbreviation: "CWS", LocationName: "Chicago"},
		{ID: 146, Name: "Miami Marlins", Abbreviation: "MIA", LocationName: "Miami"},
		{ID: 147, Name: "New York Yankees", Abbreviation: "NYY", LocationName: "Bronx"},
		{ID: 158, Name: "Milwaukee Brewers", Abbreviation: "MIL", LocationName: "Milwaukee"},
	}
}
