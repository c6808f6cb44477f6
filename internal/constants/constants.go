package constants

import "time"

const (
	StatTotal = 10
	StatMin   = 1
	StatMax   = 9
)

const (
	MinTeamSize       = 3
	MinPerPosition    = 1
	DefaultMinPlayers = 5
	DefaultMaxPlayers = 10
)

const (
	TeamATurn = 0
	TeamBTurn = 1
)

const (
	MatchIDLength = 12
)

const (
	StartTimeout    = 10 * time.Second
	ShutdownTimeout = 5 * time.Second
)
