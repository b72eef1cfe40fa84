package statsapi

type teamRef struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string             `json:"date"`
	Games []scheduleGameWire `json:"games"`
}

type scheduleGameWire struct {
	GamePk   int    `json:"gamePk"`
	GameDate string `json:"gameDate"`
	Status   struct {
		DetailedState     string `json:"detailedState"`
		AbstractGameState string `json:"abstractGameState"`
	} `json:"status"`
	Teams struct {
		Home struct {
			Team teamRef `json:"team"`
		} `json:"home"`
		Away struct {
			Team teamRef `json:"team"`
		} `json:"away"`
	} `json:"teams"`
}

type feedResponse struct {
	GameData struct {
		Teams struct {
			Home teamRef `json:"home"`
			Away teamRef `json:"away"`
		} `json:"teams"`
	} `json:"gameData"`
	LiveData struct {
		Linescore *linescoreWire `json:"linescore"`
	} `json:"liveData"`
}

type linescoreWire struct {
	CurrentInning *int   `json:"currentInning"`
	InningState   string `json:"inningState"`
	Teams         struct {
		Home sideScoreWire `json:"home"`
		Away sideScoreWire `json:"away"`
	} `json:"teams"`
}

type sideScoreWire struct {
	Runs   *int `json:"runs"`
	Hits   *int `json:"hits"`
	Errors *int `json:"errors"`
}

type teamsResponse struct {
	Teams []teamDirectoryWire `json:"teams"`
}

type teamDirectoryWire struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	LocationName string `json:"locationName"`
	Venue        struct {
		Name string `json:"name"`
	} `json:"venue"`
}
