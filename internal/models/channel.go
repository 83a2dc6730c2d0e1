package models

// ChannelStatistics is the statistics part of a channels.list item. The
// subscriber count stays in the API's string form; channels that hide it
// report hiddenSubscriberCount instead and omit the count.
type ChannelStatistics struct {
	SubscriberCount       string `json:"subscriberCount"`
	HiddenSubscriberCount bool   `json:"hiddenSubscriberCount"`
}

// Channel represents one item from channels.list.
type Channel struct {
	ID         string            `json:"id"`
	Statistics ChannelStatistics `json:"statistics"`
}

// ChannelListResponse represents the response from YouTube API for channel
// statistics.
type ChannelListResponse struct {
	Items []Channel        `json:"items"`
	Error *APIErrorPayload `json:"error,omitempty"`
}
