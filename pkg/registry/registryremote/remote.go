// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package registryremote

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/jdx/go-netrc"
	"github.com/southwellmedia/create-velocity-astro/pkg/scaffoldconfig"
)

type Remote struct {
	URL    string
	client *http.Client

	// path to a netrc file consulted for credentials. Empty means $HOME/.netrc
	netrcPath string
}

func New(registryURL, netrcPath string) *Remote {
	return &Remote{
		URL:       registryURL,
		client:    &http.Client{Timeout: 30 * time.Second},
		netrcPath: netrcPath,
	}
}

func NewFromConfig(config *scaffoldconfig.Config) *Remote {
	return New(config.RegistryURL, config.NetrcPath)
}

// Fetch retrieves the raw registry document. Premium registries are served
// behind basic auth; credentials come from the netrc machine entry matching
// the registry host.
func (r *Remote) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", scaffoldconfig.UserAgentPrefix)

	if username, password, ok := r.credentials(); ok {
		req.SetBasicAuth(username, password)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func (r *Remote) credentials() (username, password string, ok bool) {
	u, err := url.Parse(r.URL)
	if err != nil {
		return "", "", false
	}

	netrcPath := r.netrcPath
	if netrcPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", "", false
		}
		netrcPath = filepath.Join(home, ".netrc")
	}

	n, err := netrc.Parse(netrcPath)
	if err != nil {
		slog.Debug("no netrc credentials for registry. Request will be unauthenticated", "err", err.Error())
		return "", "", false
	}

	machine := n.Machine(u.Hostname())
	if machine == nil {
		return "", "", false
	}
	return machine.Get("login"), machine.Get("password"), true
}
