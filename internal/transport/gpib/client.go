// internal/transport/gpib/client.go
package gpib

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gotmc/prologix"
	"github.com/gotmc/prologix/driver/vcp"
)

// Client speaks SCPI over GPIB via a Prologix USB controller on a
// virtual COM port.
//
// The controller couples a query command with its response in one
// exchange, so Send performs the full round trip for commands ending
// in '?' and the response is surfaced on the next ReadLine. A ReadLine
// with no pending response means the link got out of step.
type Client struct {
	vcp     *vcp.VCP
	gpib    *prologix.Controller
	pending []string
}

type Config struct {
	Port    string // serial port of the Prologix VCP controller
	Address int    // GPIB primary address of the instrument
}

// New opens the controller serial port and addresses the instrument.
func New(cfg Config) (*Client, error) {
	if cfg.Port == "" {
		return nil, errors.New("gpib: controller port required")
	}

	port, err := vcp.NewVCP(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("gpib: open controller %s: %w", cfg.Port, err)
	}

	ctrl, err := prologix.NewController(port, cfg.Address, false)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("gpib: address instrument %d: %w", cfg.Address, err)
	}

	return &Client{vcp: port, gpib: ctrl}, nil
}

func (c *Client) Send(cmd string) error {
	if strings.HasSuffix(cmd, "?") {
		resp, err := c.gpib.Query(cmd)
		if err != nil {
			return fmt.Errorf("gpib: query: %w", err)
		}
		c.pending = append(c.pending, strings.TrimRight(resp, "\r\n"))
		return nil
	}

	if err := c.gpib.Command("%s", cmd); err != nil {
		return fmt.Errorf("gpib: command: %w", err)
	}
	return nil
}

func (c *Client) ReadLine() (string, error) {
	if len(c.pending) == 0 {
		return "", errors.New("gpib: no response pending")
	}
	line := c.pending[0]
	c.pending = c.pending[1:]
	return line, nil
}

// Close returns local control to the front panel, then discards any
// unread controller data and releases the serial port.
func (c *Client) Close() error {
	_ = c.gpib.FrontPanel(true)
	_ = c.vcp.Flush()
	return c.vcp.Close()
}
