package graph

import (
	"context"
	"fmt"
	"net/url"

	"adpilot/internal/core/domain"
)

// SetEntityStatus sets the configured status of a campaign, ad set or ad.
func (c *Client) SetEntityStatus(ctx context.Context, acct domain.Account, id string, action domain.Action) error {
	res, err := c.post(ctx, acct.AccessToken, id, url.Values{"status": {action.TargetStatus()}})
	if err != nil {
		return err
	}
	if s := res.Get("success"); s.Exists() && !s.Bool() {
		return fmt.Errorf("set status of %s: not applied", id)
	}
	return nil
}
