package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to fpdocs! Let's configure the documentation server.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Site name shown in the header",
		Default: defaults.SiteName,
	}
	siteName, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(defaults.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 3. Code highlighting style.
	stylePrompt := promptui.Select{
		Label: "Code highlighting style",
		Items: HighlightStyles,
	}
	_, style, err := stylePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("highlight style: %w", err)
	}

	// 4. Metrics.
	metricsPrompt := promptui.Select{
		Label: "Expose Prometheus metrics at /metrics",
		Items: []string{"yes", "no"},
	}
	metricsIdx, _, err := metricsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("metrics selection: %w", err)
	}

	cfg := DefaultConfig()
	cfg.SiteName = siteName
	cfg.Port = port
	cfg.HighlightStyle = style
	cfg.Metrics = metricsIdx == 0

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// validatePort is the promptui validator for the port prompt.
func validatePort(input string) error {
	port, err := strconv.Atoi(input)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if port <= 0 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
