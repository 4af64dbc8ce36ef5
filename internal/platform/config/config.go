package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Endpoints are the resolved base URLs of the four backend services.
type Endpoints struct {
	Auth      string
	StudyPlan string
	Catalog   string
	Advisor   string
}

type Config struct {
	Dir         string
	SessionPath string
	DBPath      string
	Endpoints   Endpoints
}

// fileConfig is the on-disk shape under <dir>/config.yaml. All fields are
// optional; the zero value resolves to the localhost development layout
// with one fixed port per service.
type fileConfig struct {
	Host     string `yaml:"host"`
	Gateway  string `yaml:"gateway"`
	Services struct {
		Auth      string `yaml:"auth"`
		StudyPlan string `yaml:"study_plan"`
		Catalog   string `yaml:"catalog"`
		Advisor   string `yaml:"advisor"`
	} `yaml:"services"`
}

func New(dir string) (Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".studyplanner")
	}

	fc := fileConfig{}
	payload, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(payload, &fc); err != nil {
			return Config{}, fmt.Errorf("decode config: %w", err)
		}
	}

	return Config{
		Dir:         dir,
		SessionPath: filepath.Join(dir, "session.json"),
		DBPath:      filepath.Join(dir, "studyplanner.db"),
		Endpoints:   resolveEndpoints(fc),
	}, nil
}

// resolveEndpoints mirrors how the web client picks service URLs at runtime:
// explicit per-service URLs win, then a shared gateway prefix, then the
// localhost layout with one fixed port per service.
func resolveEndpoints(fc fileConfig) Endpoints {
	host := fc.Host
	if host == "" {
		host = "localhost"
	}

	ep := Endpoints{
		Auth:      fmt.Sprintf("http://%s:8083", host),
		StudyPlan: fmt.Sprintf("http://%s:8081/api/v1", host),
		Catalog:   fmt.Sprintf("http://%s:8080/programs", host),
		Advisor:   fmt.Sprintf("http://%s:8082/ai-advisor", host),
	}
	if gw := strings.TrimSuffix(fc.Gateway, "/"); gw != "" {
		ep.Auth = gw
		ep.StudyPlan = gw + "/study-plans"
		ep.Catalog = gw + "/programs"
		ep.Advisor = gw + "/ai-advisor"
	}
	if fc.Services.Auth != "" {
		ep.Auth = strings.TrimSuffix(fc.Services.Auth, "/")
	}
	if fc.Services.StudyPlan != "" {
		ep.StudyPlan = strings.TrimSuffix(fc.Services.StudyPlan, "/")
	}
	if fc.Services.Catalog != "" {
		ep.Catalog = strings.TrimSuffix(fc.Services.Catalog, "/")
	}
	if fc.Services.Advisor != "" {
		ep.Advisor = strings.TrimSuffix(fc.Services.Advisor, "/")
	}
	return ep
}
