package metrics

import (
	"time"
)

type SessionMetric struct {
	Rounds     int
	Wins       int
	Losses     int
	Draws      int
	CardsDealt int
	StartTime  time.Time
	Duration   time.Duration
}

// Collector records how one shoe session played out.
type Collector interface {
	Start(cards int)
	AddRound(wins, losses, draws int)
	Complete(cardsLeft int) SessionMetric
}

type collector struct {
	startTime time.Time
	cards     int
	rounds    int
	wins      int
	losses    int
	draws     int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(cards int) {
	*m = collector{startTime: time.Now(), cards: cards}
}

func (m *collector) AddRound(wins, losses, draws int) {
	m.rounds++
	m.wins += wins
	m.losses += losses
	m.draws += draws
}

func (m *collector) Complete(cardsLeft int) SessionMetric {
	return SessionMetric{
		Rounds:     m.rounds,
		Wins:       m.wins,
		Losses:     m.losses,
		Draws:      m.draws,
		CardsDealt: m.cards - cardsLeft,
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(cards int)                      {}
func (m *dummyCollector) AddRound(wins, losses, draws int)     {}
func (m *dummyCollector) Complete(cardsLeft int) SessionMetric { return SessionMetric{} }
