/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 *
 * Package s3cache provides an implementation of httpcache.Cache that stores
 * and retrieves data using Amazon S3. Entries are gzipped at rest and keyed
 * by a sha256 digest of the cache key.
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const keyPrefix = "crosstab-webcache"

// Cache objects store and retrieve data using Amazon S3.
type Cache struct {
	client *s3.Client
	bucket string
	ctx    context.Context
}

// New returns a ready-to-use Cache backed by the given S3 bucket,
// authenticated from the default AWS configuration sources (environment
// variables, shared config/credentials files). Bucket reachability is
// verified up front so callers can fall back to another cache early.
func New(ctx context.Context, bucket string) (*Cache, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3cache: failed to load AWS config: %w", err)
	}

	c := &Cache{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		ctx:    ctx,
	}

	if _, err = c.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	}); err != nil {
		return nil, fmt.Errorf("s3cache: head bucket failed for %s: %w",
			bucket, err)
	}

	return c, nil
}

// Get retrieves the cached entry for key, reporting a miss for any error.
func (c *Cache) Get(key string) ([]byte, bool) {
	objKey := c.objectKey(key)
	resp, err := c.client.GetObject(c.ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		var apiErr smithy.APIError
		// no such key just indicates a cache miss
		if !(errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey") {
			log.Printf("s3cache.get: failed to get object %v/%v: %v",
				c.bucket, objKey, err)
		}
		return nil, false
	}
	defer resp.Body.Close()

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		log.Printf("s3cache.get: failed to open compressed object %v/%v: %v",
			c.bucket, objKey, err)
		return nil, false
	}
	defer gz.Close()

	data, err := io.ReadAll(gz)
	if err != nil {
		log.Printf("s3cache.get: failed to read object %v/%v: %v",
			c.bucket, objKey, err)
		return nil, false
	}

	return data, true
}

// Set stores the provided data in the cache under the given key.
func (c *Cache) Set(key string, data []byte) {
	objKey := c.objectKey(key)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		log.Printf("s3cache.set: failed to gzip data for %v/%v: %v",
			c.bucket, objKey, err)
		return
	}
	if err := gz.Close(); err != nil {
		log.Printf("s3cache.set: failed to close gzip writer for %v/%v: %v",
			c.bucket, objKey, err)
		return
	}

	_, err := c.client.PutObject(c.ctx, &s3.PutObjectInput{
		Bucket:          aws.String(c.bucket),
		Key:             aws.String(objKey),
		Body:            &buf,
		ContentEncoding: aws.String("gzip"),
	})
	if err != nil {
		log.Printf("s3cache.set: put failed for %v/%v: %v", c.bucket,
			objKey, err)
	}
}

func (c *Cache) Delete(key string) {
	_, err := c.client.DeleteObject(c.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(c.objectKey(key)),
	})
	if err != nil {
		log.Printf("s3cache.delete: delete failed: %v", err)
	}
}

func (c *Cache) objectKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%v/%v.gz", keyPrefix, hex.EncodeToString(sum[:]))
}
