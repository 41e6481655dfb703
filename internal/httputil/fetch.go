// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for the dictionary client.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps how much of a response body Fetch reads. Tests override
// this to exercise truncation.
var MaxBodyBytes int64 = 8 << 20

// Response is a completed HTTP exchange with its body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Fetch executes req exactly once with ctx and reads the whole body.
//
// A nil client means http.DefaultClient. Errors from client.Do are returned
// unwrapped so callers can classify transport failures themselves. The body
// is always drained and closed; a body longer than MaxBodyBytes is an error.
func Fetch(ctx context.Context, client *http.Client, req *http.Request) (Response, error) {
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req.Clone(ctx))
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return Response{}, err
	}
	if int64(len(body)) > MaxBodyBytes {
		io.Copy(io.Discard, resp.Body)
		return Response{}, fmt.Errorf("response body exceeds %d bytes", MaxBodyBytes)
	}

	return Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
