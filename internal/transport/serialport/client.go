// internal/transport/serialport/client.go
package serialport

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goburrow/serial"
)

// Client speaks SCPI over an RS-232 link.
// One connection, one instrument. Requests are newline-terminated and
// responses are read up to the instrument's line terminator.
type Client struct {
	port   serial.Port
	reader *bufio.Reader
}

type Config struct {
	Port     string
	BaudRate int
	DataBits int
	StopBits int
	Parity   string
	Timeout  time.Duration
}

// New opens the serial port. The timeout bounds every blocking read so
// a dead instrument surfaces as a failed read instead of a hang.
func New(cfg Config) (*Client, error) {
	if cfg.Port == "" {
		return nil, errors.New("serialport: port required")
	}

	port, err := serial.Open(&serial.Config{
		Address:  cfg.Port,
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		StopBits: cfg.StopBits,
		Parity:   cfg.Parity,
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("serialport: open %s: %w", cfg.Port, err)
	}

	return &Client{
		port:   port,
		reader: bufio.NewReader(port),
	}, nil
}

func (c *Client) Send(cmd string) error {
	if _, err := c.port.Write([]byte(cmd + "\n")); err != nil {
		return fmt.Errorf("serialport: write: %w", err)
	}
	return nil
}

func (c *Client) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("serialport: read: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Client) Close() error {
	return c.port.Close()
}
