package graph

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/tidwall/gjson"

	"adpilot/internal/core/domain"
)

const (
	catalogPageSize = 200
	catalogMaxPages = 10
	catalogFields   = "id,name,status,effective_status,insights.date_preset(maximum){spend,actions}"
)

// resultActions are the action types counted as results, most specific first.
var resultActions = []string{"lead", "link_click", "post_engagement"}

var scopeEdges = map[domain.Scope]string{
	domain.ScopeCampaign: "campaigns",
	domain.ScopeAdSet:    "adsets",
	domain.ScopeAd:       "ads",
}

// GetEntities lists the entities of one scope with lifetime insights.
func (c *Client) GetEntities(ctx context.Context, acct domain.Account, scope domain.Scope) ([]domain.EntityMatch, error) {
	edge, ok := scopeEdges[scope]
	if !ok {
		return nil, fmt.Errorf("unknown scope %q", scope)
	}

	params := url.Values{
		"fields": {catalogFields},
		"limit":  {fmt.Sprint(catalogPageSize)},
	}

	var out []domain.EntityMatch
	for page := 0; page < catalogMaxPages; page++ {
		res, err := c.get(ctx, acct.AccessToken, accountPath(acct, edge), params)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", edge, err)
		}

		res.Get("data").ForEach(func(_, v gjson.Result) bool {
			out = append(out, entityFromJSON(v, scope))
			return true
		})

		after := res.Get("paging.cursors.after").String()
		if after == "" || !res.Get("paging.next").Exists() {
			return out, nil
		}
		params.Set("after", after)
	}

	c.logger.Warn("catalog truncated", slog.String("edge", edge), slog.Int("entities", len(out)))
	return out, nil
}

func entityFromJSON(v gjson.Result, scope domain.Scope) domain.EntityMatch {
	e := domain.EntityMatch{
		ID:              v.Get("id").String(),
		Name:            v.Get("name").String(),
		Status:          v.Get("status").String(),
		EffectiveStatus: v.Get("effective_status").String(),
		Scope:           scope,
	}

	insights := v.Get("insights.data.0")
	if !insights.Exists() {
		return e
	}

	if s := insights.Get("spend"); s.Exists() {
		spend := s.Float()
		e.Spend = &spend
	}
	for _, action := range resultActions {
		r := insights.Get(fmt.Sprintf(`actions.#(action_type=="%s").value`, action))
		if !r.Exists() {
			continue
		}
		results := r.Int()
		e.Results = &results
		if e.Spend != nil && results > 0 {
			cpr := *e.Spend / float64(results)
			e.CostPerResult = &cpr
		}
		break
	}
	return e
}
