// Package sciolyff writes the active event's results as a SciolyFF
// (Science Olympiad File Format) YAML document, so they can be loaded by
// tools that read that format.
package sciolyff

type SciolyFF struct {
	Tournament TournamentMetadata `yaml:"Tournament"`
	Events     []Event            `yaml:"Events"`
	Teams      []School           `yaml:"Teams"`
	Placings   []Placing          `yaml:"Placings"`
}

type TournamentMetadata struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location,omitempty"`
	Level    string `yaml:"level"`
	Year     int    `yaml:"year"`
	Date     string `yaml:"date"`
}

type Event struct {
	Name             string `yaml:"name"`
	ScoringObjective string `yaml:"scoring,omitempty"`
}

type Placing struct {
	Event        string `yaml:"event"`
	TeamNumber   uint   `yaml:"team"`
	Participated bool   `yaml:"participated"`
	Tie          bool   `yaml:"tie,omitempty"`
	Place        uint   `yaml:"place"`
}

type School struct {
	TeamNumber uint     `yaml:"number"`
	Name       string   `yaml:"school"`
	Members    []string `yaml:"members,omitempty"`
}
