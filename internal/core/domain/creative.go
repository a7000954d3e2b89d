package domain

// AdResult carries the identifiers produced by the ad creation step.
// PostID is the resolved post the ad points at, kept for resuming.
type AdResult struct {
	AdID       string `json:"adId"`
	CreativeID string `json:"creativeId"`
	PostID     string `json:"postId,omitempty"`
}

// PipelineResult collects identifiers created by the three creation steps.
// It is returned even when a later step fails, since earlier objects already
// exist on the platform.
type PipelineResult struct {
	CampaignID string `json:"campaignId,omitempty"`
	AdSetID    string `json:"adSetId,omitempty"`
	AdID       string `json:"adId,omitempty"`
	CreativeID string `json:"creativeId,omitempty"`
}

// Complete reports whether all three steps succeeded.
func (r PipelineResult) Complete() bool {
	return r.CampaignID != "" && r.AdSetID != "" && r.AdID != ""
}
