package domain

// Account describes who a request acts for on the ad platform. The HTTP
// layer builds it from request headers with configured fallbacks; it is
// passed down to every collaborator call that needs a token.
type Account struct {
	UserID      string
	AccessToken string
	AdAccountID string
	PageID      string
}
