// internal/transport/hislip/client.go
package hislip

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xiabin827/gohislip"
)

// Client speaks SCPI over HiSLIP (LAN).
//
// HiSLIP frames a query and its response in one message exchange, so
// the same pending-response rule as the GPIB adapter applies: Send
// round-trips commands ending in '?' and ReadLine returns the stashed
// response.
type Client struct {
	hislip  *gohislip.Client
	pending []string
}

type Config struct {
	Endpoint   string // host:port, HiSLIP default port is 4880
	SubAddress string // e.g. "hislip0"
	Timeout    time.Duration
}

func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("hislip: endpoint required")
	}

	client, err := gohislip.Dial(context.Background(), cfg.Endpoint, &gohislip.ClientConfig{
		SubAddress: cfg.SubAddress,
		Timeout:    cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("hislip: dial %s: %w", cfg.Endpoint, err)
	}

	return &Client{hislip: client}, nil
}

func (c *Client) Send(cmd string) error {
	if strings.HasSuffix(cmd, "?") {
		resp, err := c.hislip.Query(cmd)
		if err != nil {
			return fmt.Errorf("hislip: query: %w", err)
		}
		c.pending = append(c.pending, strings.TrimRight(resp, "\r\n"))
		return nil
	}

	if err := c.hislip.Write(cmd); err != nil {
		return fmt.Errorf("hislip: write: %w", err)
	}
	return nil
}

func (c *Client) ReadLine() (string, error) {
	if len(c.pending) == 0 {
		return "", errors.New("hislip: no response pending")
	}
	line := c.pending[0]
	c.pending = c.pending[1:]
	return line, nil
}

func (c *Client) Close() error {
	return c.hislip.Close()
}
