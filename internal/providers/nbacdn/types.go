package nbacdn

type scheduleResponse struct {
	LeagueSchedule leagueSchedule `json:"leagueSchedule"`
}

type leagueSchedule struct {
	SeasonYear string         `json:"seasonYear"`
	LeagueID   string         `json:"leagueId"`
	GameDates  []gameDateResp `json:"gameDates"`
}

type gameDateResp struct {
	GameDate string     `json:"gameDate"`
	Games    []gameResp `json:"games"`
}

type gameResp struct {
	GameID          string   `json:"gameId"`
	GameCode        string   `json:"gameCode"`
	GameStatus      int      `json:"gameStatus"`
	GameStatusText  string   `json:"gameStatusText"`
	GameDateTimeUTC string   `json:"gameDateTimeUTC"`
	GameLabel       string   `json:"gameLabel"`
	GameSubLabel    string   `json:"gameSubLabel"`
	SeriesText      string   `json:"seriesText"`
	IsNeutral       bool     `json:"isNeutral"`
	HomeTeam        teamResp `json:"homeTeam"`
	AwayTeam        teamResp `json:"awayTeam"`
}

type teamResp struct {
	TeamID      int    `json:"teamId"`
	TeamName    string `json:"teamName"`
	TeamCity    string `json:"teamCity"`
	TeamTricode string `json:"teamTricode"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	// Score is a number in practice but has been seen as null or "" for unplayed games.
	Score any `json:"score"`
}
