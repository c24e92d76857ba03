package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"golang.design/x/clipboard"

	"github.com/example/screenbell/internal/notify"
	"github.com/example/screenbell/internal/platform"
)

type sendCmd struct {
	*root
	fs        *flag.FlagSet
	message   string
	severity  string
	timeout   time.Duration
	wait      time.Duration
	clickCopy bool
}

func parseSendCmd(args []string, r *root) (*sendCmd, error) {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	c := &sendCmd{root: r, fs: fs}
	fs.StringVar(&c.message, "m", "", "message text to display (required)")
	fs.StringVar(&c.severity, "severity", "info", "caller intent: info, warning or error")
	fs.DurationVar(&c.timeout, "timeout", 0, "expire the notification after this duration")
	fs.DurationVar(&c.wait, "wait", 0, "keep running this long so click/close events can arrive")
	fs.BoolVar(&c.clickCopy, "click-copy", false, "copy the message to the clipboard when the notification is clicked")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *sendCmd) Run() error {
	if strings.TrimSpace(c.message) == "" {
		return &UsageError{of: c}
	}
	emit, err := severityFunc(c.severity)
	if err != nil {
		return err
	}

	notifier, err := platform.New()
	if err != nil {
		return fmt.Errorf("notification platform: %w", err)
	}
	defer notifier.Close()

	adapter, err := notify.New(c.store, notifier, c.log)
	if err != nil {
		if errors.Is(err, notify.ErrUnsupported) {
			// No notification surface counts as "disabled", not as a
			// failure of the send command.
			return nil
		}
		return err
	}

	var opts []notify.Option
	if c.timeout > 0 {
		opts = append(opts, notify.WithTimeout(c.timeout))
	}

	done := make(chan struct{}, 2)
	if c.clickCopy {
		if err := clipboard.Init(); err != nil {
			c.log.Warn().Err(err).Msg("clipboard unavailable, click will not copy")
		} else {
			msg := c.message
			opts = append(opts, notify.WithOnClick(func() {
				clipboard.Write(clipboard.FmtText, []byte(msg))
				c.log.Info().Msg("message copied to clipboard")
				done <- struct{}{}
			}))
		}
	}
	if c.wait > 0 {
		opts = append(opts, notify.WithOnClose(func() {
			c.log.Info().Msg("notification dismissed by user")
			done <- struct{}{}
		}))
	}

	emit(adapter)(c.message, opts...)

	if c.wait > 0 {
		select {
		case <-done:
		case <-time.After(c.wait):
		}
	}
	return nil
}

// severityFunc maps the -severity flag to the matching adapter entry
// point. The variants behave identically today; the flag records
// intent.
func severityFunc(name string) (func(*notify.Adapter) func(string, ...notify.Option), error) {
	switch strings.ToLower(name) {
	case "info":
		return func(a *notify.Adapter) func(string, ...notify.Option) { return a.Info }, nil
	case "warning", "warn":
		return func(a *notify.Adapter) func(string, ...notify.Option) { return a.Warning }, nil
	case "error":
		return func(a *notify.Adapter) func(string, ...notify.Option) { return a.Error }, nil
	}
	return nil, fmt.Errorf("unknown severity %q (want info, warning or error)", name)
}
