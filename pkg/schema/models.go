// Package schema provides database schema models for gridstats.
// All integrity rules (domain checks, foreign keys, uniqueness) are
// declared here and enforced by PostgreSQL, not by application code.
package schema

import (
	"time"
)

// Team is an NFL franchise.
type Team struct {
	// ID is the league identifier of the team.
	ID int `gorm:"primaryKey;column:id"`

	// Name is the short display name, e.g. "Patriots".
	Name string `gorm:"type:varchar(15);not null"`

	// City is the home city of the team.
	City string `gorm:"type:varchar(15)"`

	// Conference is either 'AFC' or 'NFC'.
	Conference string `gorm:"type:varchar(3);check:chk_teams_conference,conference IN ('AFC','NFC')"`

	// Division is the compass division within the conference.
	Division string `gorm:"type:varchar(1);check:chk_teams_division,division IN ('N','E','S','W')"`
}

func (Team) TableName() string { return "teams" }

// Player is a football player, optionally attached to a team.
type Player struct {
	ID        int    `gorm:"primaryKey;column:id"`
	FirstName string `gorm:"type:varchar(15)"`
	LastName  string `gorm:"type:varchar(15)"`

	// Position is the abbreviated position, e.g. "QB", "RB", "WR".
	Position string `gorm:"type:varchar(4)"`

	// TeamID is NULL for free agents.
	TeamID *int  `gorm:"index"`
	Team   *Team `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (Player) TableName() string { return "players" }

// Coach is a coach, optionally attached to a team.
// The nullable-team policy matches Player.
type Coach struct {
	ID        int    `gorm:"primaryKey;column:id"`
	FirstName string `gorm:"type:varchar(15)"`
	LastName  string `gorm:"type:varchar(15)"`
	TeamID    *int   `gorm:"index"`
	Team      *Team  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	// Role is the coaching role, e.g. "Head Coach".
	Role string `gorm:"type:varchar(20)"`
}

func (Coach) TableName() string { return "coaches" }

// Game is a single scheduled game. Scores stay NULL until the game
// has been played.
type Game struct {
	ID       int       `gorm:"primaryKey;column:id"`
	GameDate time.Time `gorm:"type:date;not null"`

	// Week is the regular-season week number.
	Week int `gorm:"not null;check:chk_games_week,week BETWEEN 1 AND 18"`

	HomeTeamID int   `gorm:"not null;index;check:chk_games_distinct_teams,home_team_id <> away_team_id"`
	AwayTeamID int   `gorm:"not null;index"`
	HomeTeam   *Team `gorm:"foreignKey:HomeTeamID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	AwayTeam   *Team `gorm:"foreignKey:AwayTeamID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	HomeScore *int
	AwayScore *int
}

func (Game) TableName() string { return "games" }

// GameStat holds one player's statistics for one game. The composite
// primary key allows at most one row per (game, player) pair. Every
// statistic is nullable: NULL means the player did not record that
// category, which is distinct from recording zero.
type GameStat struct {
	GameID   int     `gorm:"primaryKey;autoIncrement:false"`
	PlayerID int     `gorm:"primaryKey;autoIncrement:false"`
	Game     *Game   `gorm:"foreignKey:GameID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Player   *Player `gorm:"foreignKey:PlayerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	PassingYards    *int
	RushingYards    *int
	ReceivingYards  *int
	Touchdowns      *int
	Tackles         *int
	Interceptions   *int
}

func (GameStat) TableName() string { return "game_stats" }
