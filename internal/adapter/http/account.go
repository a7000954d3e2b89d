package httpadapter

import (
	"net/http"
	"strings"

	"adpilot/internal/core/domain"
)

const (
	headerToken     = "X-Access-Token"
	headerAdAccount = "X-Ad-Account"
	headerPageID    = "X-Page-ID"
	headerUserID    = "X-User-ID"
)

// accountFromRequest reads the account a request acts for. Missing headers
// fall back to the configured defaults.
func (h *Handler) accountFromRequest(r *http.Request) domain.Account {
	acct := domain.Account{
		UserID:      header(r, headerUserID, h.defaults.UserID),
		AccessToken: header(r, headerToken, h.defaults.AccessToken),
		AdAccountID: header(r, headerAdAccount, h.defaults.AdAccountID),
		PageID:      header(r, headerPageID, h.defaults.PageID),
	}
	if acct.UserID == "" {
		acct.UserID = acct.AdAccountID
	}
	return acct
}

func header(r *http.Request, name, fallback string) string {
	if v := strings.TrimSpace(r.Header.Get(name)); v != "" {
		return v
	}
	return fallback
}
