package authmeta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
)

// SavePlan PATCHes the user's metadata blob at the auth provider with
// the latest travel plan.
func (c *Client) SavePlan(userID string, plan *entity.TravelPlan) error {
	requestURL := fmt.Sprintf("%s/api/v1/users/%s/metadata", c.Config.AuthAPIBase, userID)

	body, err := json.Marshal(map[string]interface{}{
		"user_metadata": map[string]interface{}{
			"last_travel_plan": plan,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal plan metadata: %w", err)
	}

	req, err := http.NewRequest(http.MethodPatch, requestURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build metadata request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Config.AuthAPIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach auth provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("auth provider returned status: %d", resp.StatusCode)
	}
	return nil
}
