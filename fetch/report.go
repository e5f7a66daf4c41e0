/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fetch

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mikeb26/crosstab/internal"
)

// FetchReport retrieves the crosstable report at url. Reports published as
// HTML pages have their text pulled out of the first <pre> block; plain
// text responses pass through unchanged.
func (client *Client) FetchReport(url string) (string, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("unable to create report request: %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("unable to fetch report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("unexpected report status %d: %s",
			resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("unable to read report body: %w", err)
	}

	if isHTML(resp.Header.Get("Content-Type"), body) {
		return extractPreText(bytes.NewReader(body))
	}

	return string(body), nil
}

func isHTML(contentType string, body []byte) bool {
	if strings.Contains(contentType, "text/html") {
		return true
	}
	head := bytes.ToLower(bytes.TrimSpace(body))
	return bytes.HasPrefix(head, []byte("<!doctype html")) ||
		bytes.HasPrefix(head, []byte("<html"))
}

// extractPreText returns the text of the first <pre> element in an HTML
// document, which is where crosstable dumps live on event pages.
func extractPreText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("unable to parse report HTML: %w", err)
	}

	sel := doc.Find("pre").First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("no <pre> report block found in page")
	}

	return sel.Text(), nil
}
