package league

import "fmt"

// League is one imported competition. Metadata carries the raw upstream
// competition payload (minus the transient seasons block) so query responses
// can expose whatever the provider returned without schema churn.
type League struct {
	DocID    string         `json:"_id,omitempty"`
	ID       int64          `json:"id"`
	Code     string         `json:"code"`
	Name     string         `json:"name"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func (l League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}
