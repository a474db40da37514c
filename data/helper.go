package data

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// helper function to run a GET request and decode the json body into target
func getJSON[DataType AlphaData | yahooChartResp](ctx context.Context, client *http.Client, url string, header http.Header, target DataType) (result DataType, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return target, err
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := client.Do(req)
	if err != nil {
		return target, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return target, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return target, fmt.Errorf("status %d: %s", resp.StatusCode, preview(body))
	}
	if strings.HasPrefix(strings.TrimSpace(string(body)), "<") {
		return target, fmt.Errorf("non-json body: %s", preview(body))
	}
	if err = json.Unmarshal(body, &target); err != nil {
		return target, fmt.Errorf("parse json: %w; body: %s", err, preview(body))
	}
	result = target
	return result, nil
}

func preview(body []byte) string {
	s := string(body)
	if len(s) > 120 {
		s = s[:120]
	}
	return s
}
