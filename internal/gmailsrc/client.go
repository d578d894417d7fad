package gmailsrc

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"cardmail/internal/models"
)

// The search calls request at most one page; there is no continuation loop.
const maxSearchResults = 100

// Client implements Source against the Gmail API
type Client struct {
	service *gmail.Service
}

// NewClient builds an authenticated Gmail client from an OAuth client
// secret file and a previously minted token file. Minting the token is an
// operator task outside this process; a missing or unreadable token is a
// startup error.
func NewClient(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	secret, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("reading client secret: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(secret, gmail.GmailReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parsing client secret: %w", err)
	}

	token, err := tokenFromFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("reading token %s: %w", tokenPath, err)
	}

	service, err := gmail.NewService(ctx, option.WithHTTPClient(oauthConfig.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("building gmail service: %w", err)
	}

	return &Client{service: service}, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, err
	}
	return token, nil
}

// Search returns the IDs of messages matching the query, capped at one
// page of results.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	res, err := c.service.Users.Messages.List("me").
		Q(query).
		MaxResults(maxSearchResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("searching messages: %w", err)
	}

	if res.ResultSizeEstimate == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(res.Messages))
	for _, m := range res.Messages {
		ids = append(ids, m.Id)
	}
	return ids, nil
}

// FetchDetail retrieves one message and maps it to the pipeline's
// RawMessage shape: the Date/From/Subject headers plus the still-encoded
// body payload.
func (c *Client) FetchDetail(ctx context.Context, id string) (*models.RawMessage, error) {
	msg, err := c.service.Users.Messages.Get("me", id).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetching message %s: %w", id, err)
	}

	raw := &models.RawMessage{ID: msg.Id}
	if msg.Payload == nil {
		return raw, nil
	}

	for _, h := range msg.Payload.Headers {
		switch h.Name {
		case "Date":
			raw.Date = h.Value
		case "From":
			raw.From = h.Value
		case "Subject":
			raw.Subject = h.Value
		}
	}

	if msg.Payload.Body != nil {
		raw.Payload.Body = models.BodyData{Size: msg.Payload.Body.Size, Data: msg.Payload.Body.Data}
	}
	for _, part := range msg.Payload.Parts {
		p := models.Part{}
		if part.Body != nil {
			p.Body = models.BodyData{Size: part.Body.Size, Data: part.Body.Data}
		}
		raw.Payload.Parts = append(raw.Payload.Parts, p)
	}

	return raw, nil
}
