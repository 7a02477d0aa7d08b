package preflight

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"rickorty/internal/config"
)

// CheckResult represents the result of a preflight check
type CheckResult struct {
	Name    string
	Status  string // "pass", "fail", "warning"
	Message string
	Error   error
}

// Checker performs pre-flight checks before server starts
type Checker struct {
	cfg *config.Config
}

// NewChecker creates a new preflight checker
func NewChecker(cfg *config.Config) *Checker {
	return &Checker{cfg: cfg}
}

// RunAll runs all preflight checks and returns results
func (c *Checker) RunAll() []CheckResult {
	log.Println("🔍 Running pre-flight checks...")

	results := []CheckResult{
		c.checkStaticDir(),
		c.checkIndexFile(),
		c.checkProviderKeys(),
		c.checkCharSnapToken(),
	}

	passed := 0
	failed := 0
	warnings := 0

	for _, result := range results {
		switch result.Status {
		case "pass":
			log.Printf("   ✅ %s: %s", result.Name, result.Message)
			passed++
		case "fail":
			log.Printf("   ❌ %s: %s", result.Name, result.Message)
			if result.Error != nil {
				log.Printf("      Error: %v", result.Error)
			}
			failed++
		case "warning":
			log.Printf("   ⚠️  %s: %s", result.Name, result.Message)
			warnings++
		}
	}

	log.Printf("📊 Pre-flight summary: %d passed, %d failed, %d warnings", passed, failed, warnings)

	return results
}

// HasFailures returns true if any check failed
func HasFailures(results []CheckResult) bool {
	for _, result := range results {
		if result.Status == "fail" {
			return true
		}
	}
	return false
}

// checkStaticDir verifies the static root exists and is a directory
func (c *Checker) checkStaticDir() CheckResult {
	info, err := os.Stat(c.cfg.StaticDir)
	if err != nil {
		return CheckResult{
			Name:    "Static Directory",
			Status:  "fail",
			Message: fmt.Sprintf("Cannot access %s", c.cfg.StaticDir),
			Error:   err,
		}
	}
	if !info.IsDir() {
		return CheckResult{
			Name:    "Static Directory",
			Status:  "fail",
			Message: fmt.Sprintf("%s is not a directory", c.cfg.StaticDir),
		}
	}

	return CheckResult{
		Name:    "Static Directory",
		Status:  "pass",
		Message: fmt.Sprintf("Serving files from %s", c.cfg.StaticDir),
	}
}

// checkIndexFile verifies the index document is present; "/" is not served without it
func (c *Checker) checkIndexFile() CheckResult {
	path := filepath.Join(c.cfg.StaticDir, c.cfg.IndexFile)
	if _, err := os.Stat(path); err != nil {
		return CheckResult{
			Name:    "Index Document",
			Status:  "warning",
			Message: fmt.Sprintf("%s not found, / will not be served", path),
		}
	}

	return CheckResult{
		Name:    "Index Document",
		Status:  "pass",
		Message: path,
	}
}

// checkProviderKeys reports which provider API keys are missing. Names only.
func (c *Checker) checkProviderKeys() CheckResult {
	keys := []struct {
		envar string
		value string
	}{
		{"CHUTES_API_KEY", c.cfg.ChutesAPIKey},
		{"OPENROUTER_API_KEY", c.cfg.OpenRouterAPIKey},
		{"GROQ_API_KEY", c.cfg.GroqAPIKey},
	}

	missing := []string{}
	for _, key := range keys {
		if key.value == "" {
			missing = append(missing, key.envar)
		}
	}

	if len(missing) > 0 {
		return CheckResult{
			Name:    "Provider Keys",
			Status:  "warning",
			Message: fmt.Sprintf("Missing environment variables: %s (served as empty strings)", strings.Join(missing, ", ")),
		}
	}

	return CheckResult{
		Name:    "Provider Keys",
		Status:  "pass",
		Message: "All provider keys configured",
	}
}

// checkCharSnapToken warns when the proxy will send an empty bearer token
func (c *Checker) checkCharSnapToken() CheckResult {
	if c.cfg.CharSnapToken == "" {
		return CheckResult{
			Name:    "CharSnap Token",
			Status:  "warning",
			Message: "CHARSNAP_API_TOKEN not set, /api/charsnap will forward an empty bearer token",
		}
	}

	return CheckResult{
		Name:    "CharSnap Token",
		Status:  "pass",
		Message: fmt.Sprintf("Forwarding to %s", c.cfg.CharSnapEndpoint),
	}
}
