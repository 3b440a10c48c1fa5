package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/bulkuser/pkg/domain/types"
)

func TestIsUserID(t *testing.T) {
	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{"uuid v3", "a3bb189e-8bf9-3888-9912-ace4e6543002", true},
		{"uuid v4", "f47ac10b-58cc-4372-a567-0e02b2c3d479", true},
		{"uuid v1", "c232ab00-9414-11ec-b3c8-9f68deced846", true},
		{"uppercase hex", "F47AC10B-58CC-4372-A567-0E02B2C3D479", true},
		{"email", "alice@example.com", false},
		{"empty", "", false},
		{"missing hyphens", "f47ac10b58cc4372a5670e02b2c3d479", false},
		{"too short", "f47ac10b-58cc-4372-a567", false},
		{"braced form", "{f47ac10b-58cc-4372-a567-0e02b2c3d479}", false},
		{"urn form", "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479", false},
		{"non-hex chars", "g47ac10b-58cc-4372-a567-0e02b2c3d479", false},
		{"nil uuid", "00000000-0000-0000-0000-000000000000", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, types.IsUserID(tc.token), tc.want)
		})
	}
}

func TestTokenClassification(t *testing.T) {
	id := types.Token("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	gt.True(t, id.IsUserID())
	gt.Equal(t, id.UserID(), types.UserID("f47ac10b-58cc-4372-a567-0e02b2c3d479"))

	email := types.Token("alice@example.com")
	gt.False(t, email.IsUserID())
	gt.Equal(t, email.Email(), types.Email("alice@example.com"))
}

func TestParseTokenList(t *testing.T) {
	t.Run("trims and drops empty entries", func(t *testing.T) {
		tokens := types.ParseTokenList(" a@x.com , ,b@x.com,, c@x.com")
		gt.Equal(t, tokens, []types.Token{"a@x.com", "b@x.com", "c@x.com"})
	})

	t.Run("empty input yields no tokens", func(t *testing.T) {
		gt.Equal(t, len(types.ParseTokenList("")), 0)
		gt.Equal(t, len(types.ParseTokenList(" , ,")), 0)
	})
}

func TestParseAction(t *testing.T) {
	gt.Equal(t, types.ParseAction(" Lock "), types.ActionLock)
	gt.Equal(t, types.ParseAction("DELETE"), types.ActionDelete)
	gt.NoError(t, types.ActionLock.Validate())
	gt.NoError(t, types.ActionDelete.Validate())

	gt.Error(t, types.ParseAction("disable").Validate())
	gt.Error(t, types.ParseAction("").Validate())
}

func TestParseRegion(t *testing.T) {
	t.Run("known regions", func(t *testing.T) {
		for raw, want := range map[string]types.Region{
			"eu": types.RegionEU,
			"US": types.RegionUS,
			"ap": types.RegionAP,
		} {
			region, err := types.ParseRegion(raw)
			gt.NoError(t, err)
			gt.Equal(t, region, want)
		}
	})

	t.Run("endpoint mapping", func(t *testing.T) {
		gt.Equal(t, types.RegionEU.GatewayURL(), "https://api.frontegg.com")
		gt.Equal(t, types.RegionUS.IdentityURL(), "https://api.us.frontegg.com/identity")
		gt.Equal(t, types.RegionAP.GatewayURL(), "https://api.ap.frontegg.com")
	})

	t.Run("unknown region", func(t *testing.T) {
		_, err := types.ParseRegion("SA")
		gt.Error(t, err)
	})
}
