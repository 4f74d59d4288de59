package cluster

import "github.com/omar221neva/FinalGp/internal/models"

// RecTask is sent by the API to a scoring node: everything the engine needs,
// so the node never touches the data store.
type RecTask struct {
	TaskID    string           `json:"taskId"`
	UserID    string           `json:"userId"`
	TopN      int              `json:"topN"`
	BookedIDs []string         `json:"bookedIds"`
	Listings  []models.Listing `json:"listings"`
}

// RecResponse is the node's answer. Error is set instead of Items when the
// computation failed.
type RecResponse struct {
	TaskID string                 `json:"taskId"`
	Items  []models.DisplayRecord `json:"items"`
	Error  string                 `json:"error,omitempty"`
}
