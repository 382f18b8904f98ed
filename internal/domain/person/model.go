package person

import "fmt"

// PositionCoach marks a person record produced from a team's coaching staff
// rather than its squad list.
const PositionCoach = "Coach"

// Person is either a squad player or a coach. TeamID is the external team id
// assigned by the upstream provider, not the store's document id.
type Person struct {
	DocID       string `json:"_id,omitempty"`
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	ShirtNumber *int   `json:"shirtNumber,omitempty"`
	TeamID      int64  `json:"teamId"`
}

func (p Person) IsCoach() bool {
	return p.Position == PositionCoach
}

func (p Person) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("person name is required")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("person team id is required")
	}

	return nil
}
