package catalog

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"coursecentral-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	random "github.com/mazen160/go-random"
)

type Client struct {
	Http *resty.Client
}

func NewClient() *Client {
	client := resty.New()
	client.SetHeader("accept-language", "en-US,en;q=0.9,en-GB;q=0.8,en-CA;q=0.7")
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	telemetry.InstrumentResty(client, "catalog/http")

	return &Client{Http: client}
}

func (c *Client) FetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetch %s: %s", url, res.Status())
	}
	return goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
}

// PoliteWait sleeps for a randomized interval between page fetches so a
// full catalog walk doesn't hammer the calendar host.
func PoliteWait() {
	ms, err := random.IntRange(250, 1250)
	if err != nil {
		ms = 750
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
