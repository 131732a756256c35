package game

import "fmt"

// Strategy is one of the three behavioral types an individual can carry.
// The numeric values index the payoff matrices and must not be reordered.
type Strategy int

const (
	Altruist     Strategy = 0
	Parochialist Strategy = 1
	Egoist       Strategy = 2
)

const strategyCount = 3

func (s Strategy) Valid() bool {
	return s >= Altruist && s <= Egoist
}

func (s Strategy) String() string {
	switch s {
	case Altruist:
		return "altruist"
	case Parochialist:
		return "parochialist"
	case Egoist:
		return "egoist"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Strategies lists all members in matrix-index order.
func Strategies() []Strategy {
	return []Strategy{Altruist, Parochialist, Egoist}
}

func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "altruist":
		return Altruist, nil
	case "parochialist":
		return Parochialist, nil
	case "egoist":
		return Egoist, nil
	default:
		return 0, fmt.Errorf("unknown strategy: %s", name)
	}
}

func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid strategy value: %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
