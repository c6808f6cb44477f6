package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// English strings double as catalog keys.
const (
	msgIntro      = "⚽ Starting match simulation..."
	msgOutro      = "🏁 Simulation finished."
	msgRosterHead = "📋 %s (%d players)"
	msgRosterLine = "  #%d %-10s atk %d def %d"
	msgHeader     = "🔍 Comparing teams '%s' vs '%s' (match %s)"
	msgTurn       = "Turn %d: '%s' attacks -> %d vs %d | %s | Score %s %d - %d %s"
	msgGoal       = "✅ GOAL"
	msgNoGoal     = "❌ No goal"
	msgUnused     = "Never played for %s: %s"
	msgFinal      = "🏁 Final: %s %d - %d %s"
	msgDefender   = "Defender"
	msgMidfielder = "Midfielder"
	msgForward    = "Forward"
)

var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

var spanish = map[string]string{
	msgIntro:      "⚽ Iniciando simulación de partido...",
	msgOutro:      "🏁 Simulación finalizada.",
	msgRosterHead: "📋 %s (%d jugadores)",
	msgRosterLine: "  #%d %-10s atq %d def %d",
	msgHeader:     "🔍 Comparando equipos '%s' vs '%s' (partido %s)",
	msgTurn:       "Turno %d: ataca '%s' -> %d vs %d | %s | Marcador %s %d - %d %s",
	msgGoal:       "✅ GOL",
	msgNoGoal:     "❌ Sin gol",
	msgUnused:     "Sin jugar en %s: %s",
	msgFinal:      "🏁 Final: %s %d - %d %s",
	msgDefender:   "Defensa",
	msgMidfielder: "Medio",
	msgForward:    "Delantero",
}

func init() {
	for key, msg := range spanish {
		if err := message.SetString(language.Spanish, key, msg); err != nil {
			panic(err)
		}
	}
}

// Tag resolves a configured language to a supported tag, defaulting to English.
func Tag(lang string) language.Tag {
	tag, _, _ := matcher.Match(language.Make(lang))
	base, _ := tag.Base()
	for _, s := range supported {
		if sb, _ := s.Base(); sb == base {
			return s
		}
	}
	return language.English
}
