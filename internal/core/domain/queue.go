package domain

// QueueItemType is the hierarchy level of a queue item.
type QueueItemType string

const (
	QueueCampaign QueueItemType = "CAMPAIGN"
	QueueAdSet    QueueItemType = "ADSET"
	QueueAd       QueueItemType = "AD"
)

// QueueStatus is the processing state of a queue item.
type QueueStatus string

const (
	QueuePending QueueStatus = "PENDING"
	QueueRunning QueueStatus = "RUNNING"
	QueueSuccess QueueStatus = "SUCCESS"
	QueueFailed  QueueStatus = "FAILED"
)

// QueueItem is one node of a draft hierarchy scheduled for publishing. Data
// holds the node fields relevant to its type: name and objective for a
// campaign, budget and audience for an ad set, the post for an ad.
type QueueItem struct {
	ID       string        `json:"id"`
	ParentID string        `json:"parentId,omitempty"`
	Type     QueueItemType `json:"type"`
	Name     string        `json:"name"`
	Status   QueueStatus   `json:"status"`
	Data     DraftCampaign `json:"data"`
	Audience []string      `json:"audience,omitempty"`
	RemoteID string        `json:"remoteId,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// Progress is reported after every processed queue item.
type Progress struct {
	Percent int      `json:"percent"`
	Current int      `json:"current"`
	Total   int      `json:"total"`
	Logs    []string `json:"logs"`
	Done    bool     `json:"done"`
	Stopped bool     `json:"stopped"`
}

// DraftTree is a stored campaign hierarchy waiting to be published. Nodes
// that were published before carry their RemoteID.
type DraftTree struct {
	ID       string       `json:"id"`
	Campaign CampaignNode `json:"campaign"`
}

// CampaignNode is the root of a draft hierarchy.
type CampaignNode struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Objective string      `json:"objective,omitempty"`
	RemoteID  string      `json:"remoteId,omitempty"`
	AdSets    []AdSetNode `json:"adSets"`
}

// AdSetNode carries budget and audience for one ad set.
type AdSetNode struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Draft           DraftCampaign `json:"draft"`
	CustomAudiences []string      `json:"customAudiences,omitempty"`
	RemoteID        string        `json:"remoteId,omitempty"`
	Ads             []AdNode      `json:"ads"`
}

// AdNode points an ad at an existing page post.
type AdNode struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PostURL        string `json:"postUrl,omitempty"`
	ResolvedPostID string `json:"resolvedPostId,omitempty"`
	RemoteID       string `json:"remoteId,omitempty"`
}
