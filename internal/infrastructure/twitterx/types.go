package twitterx

import (
	"encoding/json"
	"time"
)

// UserProfile holds the subset of a Twitter/X user record the pipeline needs
type UserProfile struct {
	ID             string
	Name           string
	Username       string
	Description    string
	FollowersCount int64
	FollowingCount int64
	TweetCount     int64
}

// Tweet holds one post as returned by the timeline endpoint
type Tweet struct {
	ID           string
	Text         string
	Language     string
	CreatedAt    time.Time
	RetweetCount int64
	ReplyCount   int64
	LikeCount    int64
	QuoteCount   int64
	Raw          json.RawMessage
}

// createdAtLayout is Twitter's legacy timestamp format
const createdAtLayout = "Mon Jan 02 15:04:05 -0700 2006"

// Wire types for the private JSON API

type userLegacy struct {
	Name           string `json:"name"`
	ScreenName     string `json:"screen_name"`
	Description    string `json:"description"`
	FollowersCount int64  `json:"followers_count"`
	FriendsCount   int64  `json:"friends_count"`
	StatusesCount  int64  `json:"statuses_count"`
}

type userResult struct {
	RestID string     `json:"rest_id"`
	Legacy userLegacy `json:"legacy"`
}

type userResponse struct {
	Data struct {
		User struct {
			Result *userResult `json:"result"`
		} `json:"user"`
	} `json:"data"`
}

type tweetLegacy struct {
	FullText      string `json:"full_text"`
	CreatedAt     string `json:"created_at"`
	Lang          string `json:"lang"`
	RetweetCount  int64  `json:"retweet_count"`
	ReplyCount    int64  `json:"reply_count"`
	FavoriteCount int64  `json:"favorite_count"`
	QuoteCount    int64  `json:"quote_count"`
}

type tweetResult struct {
	RestID string      `json:"rest_id"`
	Legacy tweetLegacy `json:"legacy"`
}

type timelineResponse struct {
	Data struct {
		Tweets []json.RawMessage `json:"tweets"`
	} `json:"data"`
}
