package app

import (
	"context"

	"github.com/xLang1234/PythonBE/internal/infrastructure/twitterx"
)

// SocialClient is the slice of the platform client the services need
type SocialClient interface {
	// UserByScreenName resolves a username to its profile
	UserByScreenName(ctx context.Context, username string) (*twitterx.UserProfile, error)
	// UserTweets fetches the most recent posts of a user, newest first
	UserTweets(ctx context.Context, userID string, limit int) ([]*twitterx.Tweet, error)
}
