// Package auth probes the usable Google credential sources in priority
// order. It only reports availability; the generation clients pick the
// credentials up themselves.
package auth

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// gcloudProbeTimeout bounds the only probe that shells out.
const gcloudProbeTimeout = 10 * time.Second

// Check is one independent credential probe. Probe reports whether the
// source is usable plus a short detail for logging. Probes have no side
// effects and do not depend on each other.
type Check struct {
	Name  string
	Probe func(ctx context.Context) (bool, string)
}

// Resolver walks an ordered list of checks; the first usable source wins.
type Resolver struct {
	checks []Check
	logger *zap.Logger
}

// NewResolver builds a resolver over the given checks, or over the default
// chain (api key, service account file, gcloud identity, project env) when
// none are supplied.
func NewResolver(logger *zap.Logger, checks ...Check) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(checks) == 0 {
		checks = defaultChecks()
	}
	return &Resolver{checks: checks, logger: logger}
}

func defaultChecks() []Check {
	return []Check{
		{Name: "api-key", Probe: probeAPIKey},
		{Name: "service-account", Probe: probeServiceAccount},
		{Name: "gcloud", Probe: probeGcloud},
		{Name: "project", Probe: probeProject},
	}
}

// Resolve returns the name of the first usable credential source. It never
// performs a model call.
func (r *Resolver) Resolve(ctx context.Context) (string, bool) {
	for _, check := range r.checks {
		ok, detail := check.Probe(ctx)
		if ok {
			r.logger.Info("credential source found",
				zap.String("source", check.Name),
				zap.String("detail", detail))
			return check.Name, true
		}
		r.logger.Debug("credential source unavailable", zap.String("source", check.Name))
	}
	return "", false
}

func probeAPIKey(context.Context) (bool, string) {
	if os.Getenv("GOOGLE_API_KEY") != "" {
		return true, "GOOGLE_API_KEY"
	}
	return false, ""
}

func probeServiceAccount(context.Context) (bool, string) {
	path := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if path == "" {
		return false, ""
	}
	if _, err := os.Stat(path); err != nil {
		return false, ""
	}
	return true, path
}

func probeGcloud(ctx context.Context) (bool, string) {
	ctx, cancel := context.WithTimeout(ctx, gcloudProbeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "gcloud", "auth", "list", "--format=value(account)").Output()
	if err != nil {
		return false, ""
	}
	accounts := strings.TrimSpace(string(out))
	if accounts == "" {
		return false, ""
	}
	account, _, _ := strings.Cut(accounts, "\n")
	return true, account
}

func probeProject(context.Context) (bool, string) {
	for _, key := range []string{"GOOGLE_CLOUD_PROJECT", "GCP_PROJECT"} {
		if v := os.Getenv(key); v != "" {
			return true, v
		}
	}
	return false, ""
}
