package config

import (
	"os"
	"strings"
	"time"

	"storefront/internal/version"
)

// APIURLEnv sets the base URL used by API clients.
const APIURLEnv = "STOREFRONT_API_URL"

// AppInfo describes the application.
type AppInfo struct {
	Name        string
	Description string
	Version     string
}

// App holds the application identity shown in headers and the CLI.
var App = AppInfo{
	Name:        "Storefront Template",
	Description: "Terminal storefront template",
	Version:     version.Short(),
}

// Routes are the navigation targets exposed by the header.
var Routes = struct {
	Home      string
	Login     string
	Register  string
	Dashboard string
	Products  string
	Profile   string
}{
	Home:      "/",
	Login:     "/login",
	Register:  "/register",
	Dashboard: "/dashboard",
	Products:  "/products",
	Profile:   "/profile",
}

// APIConfig holds the placeholder API client settings.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

const (
	defaultAPIBaseURL = "/api"
	defaultAPITimeout = 10 * time.Second
)

// LoadAPIConfig reads the API settings from the environment.
func LoadAPIConfig() APIConfig {
	base := strings.TrimSpace(os.Getenv(APIURLEnv))
	if base == "" {
		base = defaultAPIBaseURL
	}
	return APIConfig{
		BaseURL: base,
		Timeout: defaultAPITimeout,
	}
}
