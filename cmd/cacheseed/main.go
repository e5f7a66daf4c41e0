/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mikeb26/crosstab/fetch"
	"github.com/mikeb26/crosstab/internal/config"
)

// this program exists just to seed the http cache with published report
// pages ahead of time; it reads report URLs one per line from a file

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: cacheseed <url-list-file>\n")
		os.Exit(1)
	}

	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to load config: %v\n", err)
		os.Exit(1)
	}
	client := fetch.NewClient(ctx, cfg)

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to open %v: %v\n", os.Args[1], err)
		os.Exit(1)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		url := strings.TrimSpace(scanner.Text())
		if url == "" || strings.HasPrefix(url, "#") {
			continue
		}

		_, err := client.FetchReport(url)
		time.Sleep(2 * time.Second) // avoid pegging the origin
		if err != nil {
			// best effort
			continue
		}

		fmt.Printf("seeded %v\n", url)
	}
}
