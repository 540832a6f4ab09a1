// cmd/pmctl/main.go
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/scpi-powermeter/internal/config"
	"github.com/tamzrod/scpi-powermeter/internal/meter"
	"github.com/tamzrod/scpi-powermeter/internal/monitor"
	"github.com/tamzrod/scpi-powermeter/internal/scpi"
	"github.com/tamzrod/scpi-powermeter/internal/transport"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: pmctl <config.yaml> <idn|opt|reset|selftest|zero|cal|read|err>")
		os.Exit(2)
	}

	cfgPath := os.Args[1]
	op := os.Args[2]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logrus.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		logrus.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	log := newLogger(cfg.Meter.Log)

	// --------------------
	// Wire transport, session, meter
	// --------------------

	var rep scpi.Reporter
	if cfg.Meter.Metrics.Enabled {
		mon := monitor.New(log)
		mon.StartMetricsServer(cfg.Meter.Metrics.Port)
		rep = mon
	}

	tr, closeTransport, err := transport.Build(cfg.Meter)
	if err != nil {
		log.Fatalf("transport build failed: %v", err)
	}
	defer func() {
		if err := closeTransport(); err != nil {
			log.Errorf("transport close failed: %v", err)
		}
	}()

	sess := scpi.NewSession(tr, log, rep)
	dev := meter.New(sess, log)

	// --------------------
	// Run one operation
	// --------------------

	if err := run(dev, sess, op, cfg.Meter.Channel); err != nil {
		log.Fatalf("%s failed: %v", op, err)
	}
}

func run(dev *meter.Meter, sess *scpi.Session, op string, ch int) error {
	switch op {
	case "idn":
		idn, err := dev.Identify()
		if err != nil {
			return err
		}
		fmt.Println(idn)

	case "opt":
		opt, err := dev.Options()
		if err != nil {
			return err
		}
		fmt.Println(opt)

	case "reset":
		return dev.Reset()

	case "selftest":
		result, err := dev.SelfTest()
		if err != nil {
			return err
		}
		fmt.Printf("self-test result: %d\n", result)

	case "zero":
		return dev.Zero(ch)

	case "cal":
		return dev.Calibrate(ch)

	case "read":
		v, err := dev.Power(ch)
		if err != nil {
			return err
		}
		fmt.Println(v)

	case "err":
		code, msg, err := sess.QueryError()
		if err != nil {
			return err
		}
		fmt.Printf("%d,%q\n", code, msg)

	default:
		return fmt.Errorf("unknown operation %q", op)
	}

	return nil
}

func newLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return log
}
