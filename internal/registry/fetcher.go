package registry

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"nse-news-analyzer/internal/api"
)

// DefaultEquityListURL is the NSE archive location of the full equity
// listing file.
const DefaultEquityListURL = "https://archives.nseindia.com/content/equities/EQUITY_L.csv"

// Fetcher downloads the equity listing over HTTP. It is a boundary
// helper; the analysis pipeline itself never talks to the network.
type Fetcher struct {
	client *api.Client
}

// NewFetcher creates a listing fetcher with the given request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: api.NewClient(
			api.WithTimeout(timeout),
			api.WithLogging(true),
		),
	}
}

// Fetch downloads and parses the listing without touching disk.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Registry, LoadStats, error) {
	if url == "" {
		url = DefaultEquityListURL
	}

	req := api.NewRequest(http.MethodGet, url).WithContext(ctx)
	for k, v := range api.NSEHeaders() {
		req.WithHeader(k, v)
	}

	resp, err := f.client.DoWithRetry(req, nil)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("download equity list: %w", err)
	}

	return ParseCSV(bytes.NewReader(resp.Body))
}

// Download fetches the listing and writes it to destPath, creating parent
// directories as needed. The file is only replaced on a successful fetch.
func (f *Fetcher) Download(ctx context.Context, url, destPath string) error {
	if url == "" {
		url = DefaultEquityListURL
	}

	req := api.NewRequest(http.MethodGet, url).WithContext(ctx)
	for k, v := range api.NSEHeaders() {
		req.WithHeader(k, v)
	}

	resp, err := f.client.DoWithRetry(req, nil)
	if err != nil {
		return fmt.Errorf("download equity list: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("create registry dir: %w", err)
	}
	if err := os.WriteFile(destPath, resp.Body, 0644); err != nil {
		return fmt.Errorf("write registry file: %w", err)
	}
	return nil
}
