// Package view renders rosters and match transcripts for a terminal.
package view

import (
	"io"
	"matchsim/internal/config"
	"matchsim/internal/domain"
	"matchsim/internal/service"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/message"
)

type Console struct {
	w       io.Writer
	printer *message.Printer
	err     error
}

func NewConsole(cfg *config.Config) *Console {
	return NewConsoleWithWriter(os.Stdout, cfg.Language)
}

func NewConsoleWithWriter(w io.Writer, lang string) *Console {
	return &Console{w: w, printer: message.NewPrinter(Tag(lang))}
}

func (c *Console) RenderIntro() error {
	c.println(msgIntro)
	return c.flushErr()
}

func (c *Console) RenderOutro() error {
	c.println("")
	c.println(msgOutro)
	return c.flushErr()
}

func (c *Console) RenderRosters(teams ...*domain.Team) error {
	for _, t := range teams {
		c.println("")
		c.println(msgRosterHead, t.Name(), t.Size())
		for _, p := range t.Players() {
			c.println(msgRosterLine, p.ID, c.position(p.Position), p.Attack, p.Defense)
		}
	}
	return c.flushErr()
}

func (c *Console) RenderMatch(report *service.Report) error {
	res := report.Result

	c.println("")
	c.println(msgHeader, res.TeamA, res.TeamB, report.MatchID)
	for _, e := range res.Events {
		outcome := c.printer.Sprintf(msgNoGoal)
		if e.Scored {
			outcome = c.printer.Sprintf(msgGoal)
		}
		c.println(msgTurn, e.Number, e.AttackingTeam, e.AttackerID, e.DefenderID,
			outcome, res.TeamA, e.Score.A, e.Score.B, res.TeamB)
	}

	if len(res.UnusedA) > 0 {
		c.println(msgUnused, res.TeamA, joinIDs(res.UnusedA))
	}
	if len(res.UnusedB) > 0 {
		c.println(msgUnused, res.TeamB, joinIDs(res.UnusedB))
	}

	c.println("")
	c.println(msgFinal, res.TeamA, res.Score.A, res.Score.B, res.TeamB)
	return c.flushErr()
}

func (c *Console) position(p domain.Position) string {
	switch p {
	case domain.Defender:
		return c.printer.Sprintf(msgDefender)
	case domain.Midfielder:
		return c.printer.Sprintf(msgMidfielder)
	case domain.Forward:
		return c.printer.Sprintf(msgForward)
	default:
		return p.String()
	}
}

// println keeps the first write error and skips writes after it.
func (c *Console) println(key string, args ...any) {
	if c.err != nil {
		return
	}
	if key != "" {
		if _, c.err = c.printer.Fprintf(c.w, key, args...); c.err != nil {
			return
		}
	}
	_, c.err = io.WriteString(c.w, "\n")
}

func (c *Console) flushErr() error {
	err := c.err
	c.err = nil
	return err
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = "#" + strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
