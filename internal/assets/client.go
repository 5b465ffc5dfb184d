/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client queries the public asset catalog over HTTP. It implements Resolver,
// so a compiler can check asset references directly against the live
// catalog; wrap it in a Cache to avoid re-fetching between compiles.
type Client struct {
	BaseURL string
	Token   string // bearer token, optional for public assets
	client  *http.Client
}

// NewClient creates a catalog client. baseURL may include a trailing slash;
// it will be normalized.
func NewClient(baseURL string, token string) *Client {
	b := strings.TrimRight(baseURL, "/")
	return &Client{
		BaseURL: b,
		Token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, dest any) (int, error) {
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return 0, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return resp.StatusCode, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("catalog %s %s: %s", method, u.Path, resp.Status)
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	return resp.StatusCode, dec.Decode(dest)
}

// Resolve fetches one asset record. A 404 is "does not exist", not an error.
func (c *Client) Resolve(ctx context.Context, kind Kind, id int) (Record, bool, error) {
	var fields map[string]any
	path := fmt.Sprintf("/api/assets/%s/%d", url.PathEscape(string(kind)), id)
	status, err := c.doJSON(ctx, http.MethodGet, path, &fields)
	if err != nil {
		return Record{}, false, err
	}
	if status == http.StatusNotFound {
		return Record{}, false, nil
	}
	return Record{Kind: kind, ID: id, Fields: fields}, true, nil
}

// List fetches every record of one kind, for browsing and cache warm-up.
func (c *Client) List(ctx context.Context, kind Kind) ([]Record, error) {
	var raw []map[string]any
	path := fmt.Sprintf("/api/assets/%s", url.PathEscape(string(kind)))
	if _, err := c.doJSON(ctx, http.MethodGet, path, &raw); err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(raw))
	for _, fields := range raw {
		rec := Record{Kind: kind, Fields: fields}
		rec.ID, _ = rec.num("id")
		out = append(out, rec)
	}
	return out, nil
}
