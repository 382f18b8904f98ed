package footballdata

import "github.com/rifqialifauzan/football-data-service/internal/usecase"

type teamsEnvelope struct {
	Count int        `json:"count"`
	Teams []teamItem `json:"teams"`
}

type teamItem struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	ShortName string       `json:"shortName"`
	TLA       string       `json:"tla"`
	Address   string       `json:"address"`
	Area      areaItem     `json:"area"`
	Squad     []personItem `json:"squad"`
	Coach     *coachItem   `json:"coach"`
}

type areaItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type personItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	DateOfBirth string `json:"dateOfBirth"`
	Nationality string `json:"nationality"`
	ShirtNumber *int   `json:"shirtNumber"`
}

// coachItem decodes the provider's full coach block; the name-split and
// contract fields stop here and never reach a persisted record.
type coachItem struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	DateOfBirth string       `json:"dateOfBirth"`
	Nationality string       `json:"nationality"`
	Contract    contractItem `json:"contract"`
}

type contractItem struct {
	Start string `json:"start"`
	Until string `json:"until"`
}

func mapTeamToUpstream(item teamItem) usecase.UpstreamTeam {
	out := usecase.UpstreamTeam{
		ID:        item.ID,
		Name:      item.Name,
		TLA:       item.TLA,
		ShortName: item.ShortName,
		Address:   item.Address,
		AreaID:    item.Area.ID,
		AreaName:  item.Area.Name,
	}

	if len(item.Squad) > 0 {
		out.Squad = make([]usecase.UpstreamPerson, 0, len(item.Squad))
		for _, member := range item.Squad {
			out.Squad = append(out.Squad, usecase.UpstreamPerson{
				ID:          member.ID,
				Name:        member.Name,
				Position:    member.Position,
				DateOfBirth: member.DateOfBirth,
				Nationality: member.Nationality,
				ShirtNumber: member.ShirtNumber,
			})
		}
	}

	if item.Coach != nil && item.Coach.Name != "" {
		out.Coach = &usecase.UpstreamCoach{
			ID:          item.Coach.ID,
			Name:        item.Coach.Name,
			DateOfBirth: item.Coach.DateOfBirth,
			Nationality: item.Coach.Nationality,
		}
	}

	return out
}
