package main

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"
)

// AssetHandler copies one image reference to its target path. Handlers are
// tried in registration order; the first one that can handle the reference
// wins.
type AssetHandler interface {
	CanHandle(ref string) bool
	Copy(ref, dst string, store FileStore) error
}

// AssetCopier resolves image references through a handler chain: remote
// URLs are fetched, everything else is copied from the legacy asset root.
type AssetCopier struct {
	handlers []AssetHandler
}

// NewAssetCopier creates a copier with the default handlers.
func NewAssetCopier(legacyRoot string) *AssetCopier {
	c := &AssetCopier{}

	// Register handlers (most specific first)
	c.AddHandler(&RemoteAssetHandler{client: &http.Client{Timeout: 30 * time.Second}})
	c.AddHandler(&LocalAssetHandler{root: legacyRoot}) // fallback

	return c
}

// AddHandler appends a handler to the chain.
func (c *AssetCopier) AddHandler(handler AssetHandler) {
	c.handlers = append(c.handlers, handler)
}

// Copy resolves ref through the handler chain and writes it to dst.
func (c *AssetCopier) Copy(ref, dst string, store FileStore) error {
	for _, handler := range c.handlers {
		if handler.CanHandle(ref) {
			return handler.Copy(ref, dst, store)
		}
	}
	return fmt.Errorf("no handler found for asset %s", ref)
}

// RemoteAssetHandler fetches http(s) image references. A non-200 response
// is fatal: the run carries no retry or partial-success path.
type RemoteAssetHandler struct {
	client *http.Client
}

func (h *RemoteAssetHandler) CanHandle(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

func (h *RemoteAssetHandler) Copy(ref, dst string, store FileStore) error {
	resp, err := h.client.Get(ref)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", ref, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &HTTPError{StatusCode: resp.StatusCode, URL: ref}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s: %w", ref, err)
	}

	return store.WriteFile(dst, data)
}

// LocalAssetHandler copies references from the legacy asset root (fallback).
type LocalAssetHandler struct {
	root string
}

func (h *LocalAssetHandler) CanHandle(ref string) bool {
	return true // Always handles as fallback
}

func (h *LocalAssetHandler) Copy(ref, dst string, store FileStore) error {
	return store.CopyFile(filepath.Join(h.root, ref), dst)
}
