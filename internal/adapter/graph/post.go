package graph

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	postsPathPattern  = regexp.MustCompile(`/(\d+)/posts/(\d+)`)
	numericPostID     = regexp.MustCompile(`^\d+$`)
	qualifiedPostID   = regexp.MustCompile(`^\d+_\d+$`)
	permalinkIDParams = []string{"story_fbid", "fbid"}
)

const recentPostsLimit = 100

// ResolvePost turns a post URL into a "<page>_<post>" id. Concurrent calls
// for the same input share one lookup.
func (c *Client) ResolvePost(ctx context.Context, rawURL, pageID, token string) (string, error) {
	key := pageID + "|" + rawURL
	v, err, _ := c.posts.Do(key, func() (any, error) {
		return c.resolvePost(ctx, rawURL, pageID, token)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) resolvePost(ctx context.Context, rawURL, pageID, token string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if qualifiedPostID.MatchString(rawURL) {
		return rawURL, nil
	}
	if numericPostID.MatchString(rawURL) && pageID != "" {
		return pageID + "_" + rawURL, nil
	}

	if id, ok := postIDFromURL(rawURL, pageID); ok {
		return id, nil
	}

	if pageID == "" {
		return "", fmt.Errorf("cannot resolve %q without a page id", rawURL)
	}
	return c.findRecentPost(ctx, rawURL, pageID, token)
}

// postIDFromURL reads the id straight from well-known URL shapes.
func postIDFromURL(rawURL, pageID string) (string, bool) {
	if m := postsPathPattern.FindStringSubmatch(rawURL); m != nil {
		return m[1] + "_" + m[2], true
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	q := u.Query()
	owner := q.Get("id")
	if owner == "" {
		owner = pageID
	}
	for _, param := range permalinkIDParams {
		if post := q.Get(param); numericPostID.MatchString(post) && numericPostID.MatchString(owner) {
			return owner + "_" + post, true
		}
	}
	return "", false
}

// findRecentPost matches the URL against the permalinks of the page's most
// recent posts. Share links and pfbid URLs only resolve this way.
func (c *Client) findRecentPost(ctx context.Context, rawURL, pageID, token string) (string, error) {
	res, err := c.get(ctx, token, pageID+"/posts", url.Values{
		"fields": {"id,permalink_url"},
		"limit":  {fmt.Sprint(recentPostsLimit)},
	})
	if err != nil {
		return "", err
	}

	want := canonicalURL(rawURL)
	var found string
	res.Get("data").ForEach(func(_, v gjson.Result) bool {
		if canonicalURL(v.Get("permalink_url").String()) == want {
			found = v.Get("id").String()
			return false
		}
		return true
	})
	if found == "" {
		return "", fmt.Errorf("post %q not found among the last %d posts of page %s", rawURL, recentPostsLimit, pageID)
	}
	return found, nil
}

func canonicalURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	host := strings.TrimPrefix(strings.TrimPrefix(u.Host, "www."), "m.")
	return host + strings.TrimRight(u.Path, "/")
}
