package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bulkuser/pkg/domain/types"
	"github.com/secmon-lab/bulkuser/pkg/service/frontegg"
	"github.com/urfave/cli/v3"
)

// Frontegg holds vendor credentials and endpoint configuration
type Frontegg struct {
	ClientID string
	APIToken string
	TenantID string
	Region   string
}

// Flags returns CLI flags for Frontegg configuration
func (f *Frontegg) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "client-id",
			Usage:       "Frontegg vendor client ID",
			Category:    "Frontegg",
			Sources:     cli.EnvVars("FRONTEGG_CLIENT_ID"),
			Destination: &f.ClientID,
		},
		&cli.StringFlag{
			Name:        "api-token",
			Usage:       "Frontegg vendor API token",
			Category:    "Frontegg",
			Sources:     cli.EnvVars("FRONTEGG_API_TOKEN"),
			Destination: &f.APIToken,
		},
		&cli.StringFlag{
			Name:        "tenant-id",
			Usage:       "Tenant scope for delete; when unset, deletion is global",
			Category:    "Frontegg",
			Sources:     cli.EnvVars("FRONTEGG_TENANT_ID"),
			Destination: &f.TenantID,
		},
		&cli.StringFlag{
			Name:        "region",
			Usage:       "Frontegg region (EU, US, AP)",
			Category:    "Frontegg",
			Value:       "EU",
			Sources:     cli.EnvVars("FRONTEGG_REGION"),
			Destination: &f.Region,
		},
	}
}

// Validate checks credentials and region before any network activity
func (f *Frontegg) Validate() error {
	if f.ClientID == "" || f.APIToken == "" {
		return goerr.New("FRONTEGG_CLIENT_ID and FRONTEGG_API_TOKEN must be set")
	}
	if _, err := types.ParseRegion(f.Region); err != nil {
		return err
	}
	return nil
}

// Configure creates the vendor identity client
func (f *Frontegg) Configure() (*frontegg.Client, error) {
	region, err := types.ParseRegion(f.Region)
	if err != nil {
		return nil, err
	}
	return frontegg.New(region, f.ClientID, f.APIToken), nil
}

// Tenant returns the configured tenant scope, empty when unset
func (f *Frontegg) Tenant() types.TenantID {
	return types.TenantID(f.TenantID)
}

// LogValue returns structured log value without leaking credentials
func (f Frontegg) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_client_id", f.ClientID != ""),
		slog.Bool("has_api_token", f.APIToken != ""),
		slog.String("tenant_id", f.TenantID),
		slog.String("region", f.Region),
	)
}
