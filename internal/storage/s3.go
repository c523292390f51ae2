// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage resolves image and document records to URLs on an
// S3-compatible object store. It wraps the AWS SDK v2 and is configured
// for path-style access (required by CEPH/Hetzner). Uploading and
// transforming files happens elsewhere; this package only links to them
// and removes them when their records are deleted.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultPresignTTL is how long a presigned document link stays valid.
const DefaultPresignTTL = 15 * time.Minute

// Options configures a Client.
type Options struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	// PublicBucket holds images served directly to visitors.
	PublicBucket string
	// PublicURL is an optional CDN or custom domain in front of PublicBucket.
	PublicURL string
	// PresignTTL bounds presigned links to private objects.
	PresignTTL time.Duration
}

// Client links stored objects.
type Client struct {
	s3           *s3.Client
	presigner    *s3.PresignClient
	publicBucket string
	endpoint     string
	publicURL    string
	presignTTL   time.Duration
}

// New creates an S3 storage client with path-style addressing. Returns
// (nil, nil) if endpoint or credentials are empty, allowing the app to
// start without storage. A nil *Client is safe to use.
func New(opts Options) (*Client, error) {
	if opts.Endpoint == "" || opts.AccessKey == "" || opts.SecretKey == "" {
		return nil, nil
	}
	if opts.Region == "" {
		return nil, fmt.Errorf("storage: region is required")
	}

	endpoint := strings.TrimRight(opts.Endpoint, "/")
	s3Client := s3.New(s3.Options{
		Region:       opts.Region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		UsePathStyle: true,
	})

	ttl := opts.PresignTTL
	if ttl <= 0 {
		ttl = DefaultPresignTTL
	}

	return &Client{
		s3:           s3Client,
		presigner:    s3.NewPresignClient(s3Client),
		publicBucket: opts.PublicBucket,
		endpoint:     endpoint,
		publicURL:    strings.TrimRight(opts.PublicURL, "/"),
		presignTTL:   ttl,
	}, nil
}

// FileURL returns the direct URL of an object. Objects in the public bucket
// use the configured public URL when set. Returns "" on a nil client.
func (c *Client) FileURL(bucket, key string) string {
	if c == nil || key == "" {
		return ""
	}
	if bucket == c.publicBucket && c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + bucket + "/" + key
}

// URL returns a link visitors can follow: the direct URL for the public
// bucket, a presigned GET URL for anything else. Returns "" on a nil client.
func (c *Client) URL(ctx context.Context, bucket, key string) (string, error) {
	if c == nil || key == "" {
		return "", nil
	}
	if bucket == c.publicBucket {
		return c.FileURL(bucket, key), nil
	}
	return c.PresignedURL(ctx, bucket, key, c.presignTTL)
}

// PresignedURL generates a pre-signed GET URL for a private object.
// The URL is valid for the specified duration (S3 allows at most 7 days).
func (c *Client) PresignedURL(ctx context.Context, bucket, key string, expires time.Duration) (string, error) {
	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("s3 presign %s/%s: %w", bucket, key, err)
	}
	return req.URL, nil
}

// Delete removes an object. It is a no-op on a nil client.
func (c *Client) Delete(ctx context.Context, bucket, key string) error {
	if c == nil {
		return nil
	}
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

// PublicBucket returns the name of the public bucket.
func (c *Client) PublicBucket() string {
	if c == nil {
		return ""
	}
	return c.publicBucket
}
