package rules

import (
	"fmt"
	"strings"
)

// Level is the severity a rule reports when its check fails. Levels are
// totally ordered by their numeric value.
type Level int

const (
	LevelNone Level = iota
	LevelWarning
	LevelError
)

var (
	levelNames  = [...]string{"none", "warning", "error"}
	levelColors = [...]string{"37m", "33m", "31m"}
)

func (l Level) valid() bool {
	return l >= LevelNone && l <= LevelError
}

func (l Level) String() string {
	if !l.valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Color is the ANSI SGR colour code used when rendering the level.
func (l Level) Color() string {
	if !l.valid() {
		return "0m"
	}
	return levelColors[l]
}

func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Level(i), nil
		}
	}
	return LevelNone, fmt.Errorf("unknown lint level %q", s)
}

func (l Level) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("invalid lint level %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
