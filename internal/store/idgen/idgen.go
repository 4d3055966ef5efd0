// Package idgen mints the human-legible identifiers used for orders, payments,
// transactions and log entries.
//
// Identifiers look like ORD-MF3K2Q1Z-9C41A0B2E7F1: a prefix, the creation time in
// base36 milliseconds and a random suffix. They are unique within a process
// with overwhelming probability; they are not sortable and not secret.
package idgen

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	PrefixOrder       = "ORD"
	PrefixPayment     = "PAY"
	PrefixTransaction = "TXN"
	PrefixLog         = "LOG"
)

// Generator mints a new identifier for the given prefix.
type Generator interface {
	NewID(prefix string) string
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(prefix string) string

func (f GeneratorFunc) NewID(prefix string) string { return f(prefix) }

type Option func(*clockRandom)

// WithClock replaces the wall clock used for the time component.
func WithClock(clock func() time.Time) Option {
	return func(g *clockRandom) {
		if clock != nil {
			g.now = clock
		}
	}
}

type clockRandom struct {
	now func() time.Time
}

// New returns the default clock + random Generator.
func New(opts ...Option) Generator {
	g := &clockRandom{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *clockRandom) NewID(prefix string) string {
	millis := g.now().UnixMilli()
	timePart := strings.ToUpper(strconv.FormatInt(millis, 36))
	randPart := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	return prefix + "-" + timePart + "-" + randPart
}

type sequence struct {
	mu   sync.Mutex
	next int
}

// Sequence returns a deterministic Generator producing PREFIX-TEST-0001,
// PREFIX-TEST-0002 and so on, sharing one counter across prefixes.
func Sequence(start int) Generator {
	if start < 1 {
		start = 1
	}
	return &sequence{next: start}
}

func (s *sequence) NewID(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("%s-TEST-%04d", prefix, s.next)
	s.next++
	return id
}
