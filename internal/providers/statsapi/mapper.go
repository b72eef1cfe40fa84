package statsapi

import (
	"mlb-score-watcher/internal/domain"
)

func mapScheduleGame(g scheduleGameWire) domain.ScheduleGame {
	return domain.ScheduleGame{
		GamePk:        g.GamePk,
		StartTime:     g.GameDate,
		DetailedState: g.Status.DetailedState,
		AbstractState: domain.AbstractState(g.Status.AbstractGameState),
		HomeTeam:      mapTeam(g.Teams.Home.Team),
		AwayTeam:      mapTeam(g.Teams.Away.Team),
	}
}

func mapTeam(t teamRef) domain.TeamInfo {
	return domain.TeamInfo{
		ID:           t.ID,
		Name:         t.Name,
		Abbreviation: t.Abbreviation,
	}
}

func mapLinescore(feed feedResponse) *domain.Linescore {
	ls := feed.LiveData.Linescore
	if ls == nil {
		return nil
	}
	return &domain.Linescore{
		Home:        mapSide(feed.GameData.Teams.Home, ls.Teams.Home),
		Away:        mapSide(feed.GameData.Teams.Away, ls.Teams.Away),
		Inning:      ls.CurrentInning,
		InningState: ls.InningState,
	}
}

func mapSide(team teamRef, score sideScoreWire) domain.TeamScore {
	runs := score.Runs
	if runs == nil {
		runs = domain.IntPtr(0)
	}
	return domain.TeamScore{
		Team:   mapTeam(team),
		Runs:   runs,
		Hits:   score.Hits,
		Errors: score.Errors,
	}
}

func mapDirectoryTeam(t teamDirectoryWire) domain.TeamSearchResult {
	return domain.TeamSearchResult{
		ID:           t.ID,
		Name:         t.Name,
		Abbreviation: t.Abbreviation,
		LocationName: t.LocationName,
		VenueName:    t.Venue.Name,
	}
}
