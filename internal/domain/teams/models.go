package teams

// Conference names as used by the league table.
type Conference string

const (
	East Conference = "East"
	West Conference = "West"
)

// Conferences lists both conferences in display order.
var Conferences = []Conference{East, West}

// Team is one row of the conference/division table.
type Team struct {
	Tricode    string     `json:"tricode" yaml:"tricode"`
	ID         int        `json:"id" yaml:"id"`
	City       string     `json:"city" yaml:"city"`
	Name       string     `json:"name" yaml:"name"`
	Conference Conference `json:"conference" yaml:"conference"`
	Division   string     `json:"division" yaml:"division"`
}
