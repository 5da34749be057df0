// Package twitterx is an unofficial client for the Twitter/X private JSON API,
// authenticated with rotating browser session cookies.
package twitterx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/xLang1234/PythonBE/internal/pkg/config"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

// ErrRateLimited is returned when the API answers 429 for the current session
var ErrRateLimited = errors.New("twitter rate limit hit")

// bearerToken is the public web-app token every browser session uses
const bearerToken = "AAAAAAAAAAAAAAAAAAAAANRILgAAAAAAnNwIzUejRCOuH5E6I8xnZz4puTs%3D1Zv7ttfk8LF81IUq16cHjhLTvJu4FA33AGWWjCpTnA"

// Client talks to the Twitter/X private API
type Client struct {
	httpClient *http.Client
	baseURL    string
	cookies    *CookieManager
	logger     logger.Logger
}

// NewClient creates a Twitter/X client from settings and a cookie manager
func NewClient(settings *config.TwitterSettings, cookies *CookieManager, log logger.Logger) (*Client, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    settings.BaseURL,
		cookies:    cookies,
		logger:     log,
	}, nil
}

// UserByScreenName resolves a username to its profile
func (c *Client) UserByScreenName(ctx context.Context, username string) (*UserProfile, error) {
	query := url.Values{"screen_name": {username}}

	body, err := c.get(ctx, "/graphql/UserByScreenName", query)
	if err != nil {
		return nil, err
	}

	var resp userResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode user response: %w", err)
	}
	if resp.Data.User.Result == nil {
		return nil, fmt.Errorf("user %s not found", username)
	}

	result := resp.Data.User.Result
	return &UserProfile{
		ID:             result.RestID,
		Name:           result.Legacy.Name,
		Username:       result.Legacy.ScreenName,
		Description:    result.Legacy.Description,
		FollowersCount: result.Legacy.FollowersCount,
		FollowingCount: result.Legacy.FriendsCount,
		TweetCount:     result.Legacy.StatusesCount,
	}, nil
}

// UserTweets fetches the most recent posts of a user, newest first
func (c *Client) UserTweets(ctx context.Context, userID string, limit int) ([]*Tweet, error) {
	query := url.Values{
		"user_id": {userID},
		"count":   {strconv.Itoa(limit)},
	}

	body, err := c.get(ctx, "/graphql/UserTweets", query)
	if err != nil {
		return nil, err
	}

	var resp timelineResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode timeline response: %w", err)
	}

	tweets := make([]*Tweet, 0, len(resp.Data.Tweets))
	for _, raw := range resp.Data.Tweets {
		var result tweetResult
		if err := json.Unmarshal(raw, &result); err != nil {
			c.logger.Warn("Skipping undecodable tweet: ", err)
			continue
		}

		createdAt, err := time.Parse(createdAtLayout, result.Legacy.CreatedAt)
		if err != nil {
			c.logger.Warn("Skipping tweet ", result.RestID, " with bad timestamp: ", err)
			continue
		}

		tweets = append(tweets, &Tweet{
			ID:           result.RestID,
			Text:         result.Legacy.FullText,
			Language:     result.Legacy.Lang,
			CreatedAt:    createdAt,
			RetweetCount: result.Legacy.RetweetCount,
			ReplyCount:   result.Legacy.ReplyCount,
			LikeCount:    result.Legacy.FavoriteCount,
			QuoteCount:   result.Legacy.QuoteCount,
			Raw:          raw,
		})
	}

	return tweets, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	if err := c.authorize(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		// Switch sessions before the caller backs off
		if _, rotateErr := c.cookies.Next(true); rotateErr != nil {
			c.logger.Warn("Cookie rotation after 429 failed: ", rotateErr)
		}
		return nil, ErrRateLimited
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// authorize attaches the bearer token and the current session cookies
func (c *Client) authorize(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+bearerToken)

	cookieFile, err := c.cookies.Current()
	if err != nil {
		return fmt.Errorf("no usable session: %w", err)
	}

	values, err := readCookieFile(cookieFile)
	if err != nil {
		return err
	}

	for name, value := range values {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	if ct0, ok := values["ct0"]; ok {
		req.Header.Set("x-csrf-token", ct0)
	}

	return nil
}
