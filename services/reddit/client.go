package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"coursecentral-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	random "github.com/mazen160/go-random"
)

const (
	authBaseURL = "https://www.reddit.com"
	apiBaseURL  = "https://oauth.reddit.com"
	userAgent   = "coursecentral/1.0 (course discussion collector)"
)

// Post is the subset of a reddit submission the pipeline cares about.
type Post struct {
	ID          string
	Title       string
	SelfText    string
	URL         string
	Score       int64
	NumComments int64
	IsSelf      bool
	Over18      bool
	Locked      bool
	CreatedUTC  time.Time
}

// Comment is one top-level or nested comment under a post.
type Comment struct {
	Body       string
	Score      int64
	CreatedUTC time.Time
}

type Client struct {
	Http *resty.Client
}

// NewClient authenticates against the reddit API with the script-app
// client_credentials flow and returns a client that talks to the oauth
// host with the bearer token applied.
func NewClient(ctx context.Context, clientID, clientSecret string) (*Client, error) {
	auth := resty.New()
	auth.SetBaseURL(authBaseURL)
	auth.SetHeader("user-agent", userAgent)
	auth.SetTimeout(time.Second * 30)

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		Error       string `json:"error"`
	}
	res, err := auth.R().
		SetContext(ctx).
		SetBasicAuth(clientID, clientSecret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&token).
		Post("/api/v1/access_token")
	if err != nil {
		return nil, err
	}
	if res.IsError() || token.Error != "" {
		return nil, fmt.Errorf("reddit auth: %s %s", res.Status(), token.Error)
	}

	client := resty.New()
	client.SetBaseURL(apiBaseURL)
	client.SetHeader("user-agent", userAgent)
	client.SetAuthToken(token.AccessToken)
	client.SetTimeout(time.Second * 30)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	telemetry.InstrumentResty(client, "reddit/http")

	return &Client{Http: client}, nil
}

type listingEnvelope struct {
	Data struct {
		After    string            `json:"after"`
		Children []json.RawMessage `json:"children"`
	} `json:"data"`
}

type thing struct {
	Kind string `json:"kind"`
	Data struct {
		ID          string          `json:"id"`
		Title       string          `json:"title"`
		SelfText    string          `json:"selftext"`
		Permalink   string          `json:"permalink"`
		Score       int64           `json:"score"`
		NumComments int64           `json:"num_comments"`
		IsSelf      bool            `json:"is_self"`
		Over18      bool            `json:"over_18"`
		Locked      bool            `json:"locked"`
		Body        string          `json:"body"`
		CreatedUTC  float64         `json:"created_utc"`
		Replies     json.RawMessage `json:"replies"`
	} `json:"data"`
}

// NewPosts pages through /r/<subreddit>/new until limit posts have been
// collected or the listing runs out.
func (c *Client) NewPosts(ctx context.Context, subreddit string, limit int) ([]Post, error) {
	var posts []Post
	after := ""
	for len(posts) < limit {
		var listing listingEnvelope
		req := c.Http.R().
			SetContext(ctx).
			SetQueryParam("limit", "100").
			SetResult(&listing)
		if after != "" {
			req.SetQueryParam("after", after)
		}
		res, err := req.Get(fmt.Sprintf("/r/%s/new.json", subreddit))
		if err != nil {
			return posts, err
		}
		if res.IsError() {
			return posts, fmt.Errorf("list posts: %s", res.Status())
		}

		for _, raw := range listing.Data.Children {
			var t thing
			if err := json.Unmarshal(raw, &t); err != nil {
				continue
			}
			posts = append(posts, Post{
				ID:          t.Data.ID,
				Title:       t.Data.Title,
				SelfText:    t.Data.SelfText,
				URL:         authBaseURL + t.Data.Permalink,
				Score:       t.Data.Score,
				NumComments: t.Data.NumComments,
				IsSelf:      t.Data.IsSelf,
				Over18:      t.Data.Over18,
				Locked:      t.Data.Locked,
				CreatedUTC:  time.Unix(int64(t.Data.CreatedUTC), 0).UTC(),
			})
			if len(posts) == limit {
				break
			}
		}

		after = listing.Data.After
		if after == "" {
			break
		}
		PoliteWait()
	}
	return posts, nil
}

// Comments fetches the full comment tree of a post, flattened.
func (c *Client) Comments(ctx context.Context, subreddit, postID string) ([]Comment, error) {
	var envelopes []listingEnvelope
	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParam("limit", "500").
		SetResult(&envelopes).
		Get(fmt.Sprintf("/r/%s/comments/%s.json", subreddit, postID))
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetch comments: %s", res.Status())
	}
	// envelope 0 is the post itself, envelope 1 the comment forest
	if len(envelopes) < 2 {
		return nil, nil
	}

	var comments []Comment
	for _, raw := range envelopes[1].Data.Children {
		collectComments(raw, &comments)
	}
	return comments, nil
}

func collectComments(raw json.RawMessage, out *[]Comment) {
	var t thing
	if err := json.Unmarshal(raw, &t); err != nil {
		return
	}
	if t.Kind != "t1" {
		return
	}
	*out = append(*out, Comment{
		Body:       t.Data.Body,
		Score:      t.Data.Score,
		CreatedUTC: time.Unix(int64(t.Data.CreatedUTC), 0).UTC(),
	})

	// replies is "" when there are none, a listing object otherwise
	var replies listingEnvelope
	if err := json.Unmarshal(t.Data.Replies, &replies); err != nil {
		return
	}
	for _, child := range replies.Data.Children {
		collectComments(child, out)
	}
}

// PoliteWait sleeps for a randomized interval between API calls.
func PoliteWait() {
	ms, err := random.IntRange(250, 1250)
	if err != nil {
		ms = 750
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
