package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		// Handle Sections
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			continue
		}

		// Parse Key = Value
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		// Remove quotes if present
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		switch currentSection {
		case "":
			switch key {
			case "app_id":
				cfg.AppID = value
			case "icon_dir":
				cfg.IconDir = value
			}
		case "notify":
			switch key {
			case "enabled":
				b, err := strconv.ParseBool(value)
				if err != nil {
					return nil, fmt.Errorf("notify.enabled: invalid bool %q", value)
				}
				cfg.Notify.Enabled = b
			case "default_timeout":
				d, err := parseDuration("notify.default_timeout", value)
				if err != nil {
					return nil, err
				}
				cfg.Notify.DefaultTimeout = d
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cfg, nil
}
