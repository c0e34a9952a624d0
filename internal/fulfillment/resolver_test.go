package fulfillment_test

import (
	"strings"
	"testing"

	"github.com/ghbundles/fulfillment-service/internal/entities"
	"github.com/ghbundles/fulfillment-service/internal/fulfillment"
	"github.com/stretchr/testify/assert"
)

func TestParseVolumeMB(t *testing.T) {
	testCases := []struct {
		name       string
		product    string
		slug       string
		wantMB     int
		wantParsed bool
	}{
		{name: "whole gigabytes", product: "MTN 1GB Data Bundle", wantMB: 1000, wantParsed: true},
		{name: "large bundle", product: "MTN 100GB", wantMB: 100000, wantParsed: true},
		{name: "fractional gigabytes", product: "AirtelTigo 2.5GB", wantMB: 2500, wantParsed: true},
		{name: "megabytes", product: "Vodafone 500MB Bundle", wantMB: 500, wantParsed: true},
		{name: "gb wins over mb", product: "Combo 1GB + 500MB", wantMB: 1000, wantParsed: true},
		{name: "lowercase unit", product: "mtn 5gb weekly", wantMB: 5000, wantParsed: true},
		{name: "space before unit", product: "MTN 10 GB", wantMB: 10000, wantParsed: true},
		{name: "size only in slug", product: "Special Bundle", slug: "mtn-5gb", wantMB: 5000, wantParsed: true},
		{name: "no size", product: "Airtime Top-Up", wantParsed: false},
		{name: "empty", product: "", wantParsed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mb, ok := fulfillment.ParseVolumeMB(tc.product, tc.slug)
			assert.Equal(t, tc.wantParsed, ok)
			assert.Equal(t, tc.wantMB, mb)
		})
	}
}

func TestParseCapacityGB(t *testing.T) {
	testCases := []struct {
		name       string
		product    string
		wantGB     int
		wantParsed bool
	}{
		{name: "whole gigabytes", product: "Telecel 1GB", wantGB: 1, wantParsed: true},
		{name: "fractional rounds", product: "Telecel 2.5GB", wantGB: 3, wantParsed: true},
		{name: "megabytes dividing evenly", product: "Telecel 1000MB", wantGB: 1, wantParsed: true},
		{name: "megabytes not dividing", product: "Telecel 1500MB", wantParsed: false},
		{name: "small megabytes", product: "Telecel 500MB", wantParsed: false},
		{name: "no size", product: "Telecel Top-Up", wantParsed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gb, ok := fulfillment.ParseCapacityGB(tc.product, "")
			assert.Equal(t, tc.wantParsed, ok)
			assert.Equal(t, tc.wantGB, gb)
		})
	}
}

func TestResolveCapacity(t *testing.T) {
	overrides := map[string]int{
		"telecel-odd-bundle": 2,
		"1500":               2,
	}

	t.Run("slug override wins", func(t *testing.T) {
		p := entities.Product{Name: "Telecel 5GB", Slug: "telecel-odd-bundle"}
		gb, ok := fulfillment.ResolveCapacity(p, 5000, overrides)
		assert.True(t, ok)
		assert.Equal(t, 2, gb)
	})

	t.Run("volume override", func(t *testing.T) {
		p := entities.Product{Name: "Telecel 1500MB", Slug: "telecel-15"}
		gb, ok := fulfillment.ResolveCapacity(p, 1500, overrides)
		assert.True(t, ok)
		assert.Equal(t, 2, gb)
	})

	t.Run("falls back to parsing", func(t *testing.T) {
		p := entities.Product{Name: "Telecel 3GB", Slug: "telecel-3gb"}
		gb, ok := fulfillment.ResolveCapacity(p, 3000, nil)
		assert.True(t, ok)
		assert.Equal(t, 3, gb)
	})

	t.Run("unresolvable", func(t *testing.T) {
		p := entities.Product{Name: "Telecel 1500MB", Slug: "telecel-15"}
		_, ok := fulfillment.ResolveCapacity(p, 1500, nil)
		assert.False(t, ok)
	})
}

func TestBuildReference(t *testing.T) {
	t.Run("hubnet prefix", func(t *testing.T) {
		ref := fulfillment.BuildReference(entities.ProviderHubnet, "cm1abc-123", "it9xyz-456")
		assert.True(t, strings.HasPrefix(ref, "HN-"))
		assert.Equal(t, strings.ToUpper(ref), ref)
		assert.LessOrEqual(t, len(ref), 25)
	})

	t.Run("datahubnet prefix", func(t *testing.T) {
		ref := fulfillment.BuildReference(entities.ProviderDatahubnet, "cm1abc", "it9xyz")
		assert.True(t, strings.HasPrefix(ref, "DH-"))
	})

	t.Run("deterministic", func(t *testing.T) {
		a := fulfillment.BuildReference(entities.ProviderHubnet, "order-1", "item-1")
		b := fulfillment.BuildReference(entities.ProviderHubnet, "order-1", "item-1")
		assert.Equal(t, a, b)
	})

	t.Run("distinct items distinct references", func(t *testing.T) {
		a := fulfillment.BuildReference(entities.ProviderHubnet, "order-1", "item-1")
		b := fulfillment.BuildReference(entities.ProviderHubnet, "order-1", "item-2")
		assert.NotEqual(t, a, b)
	})

	t.Run("long ids stay under the limit", func(t *testing.T) {
		ref := fulfillment.BuildReference(entities.ProviderHubnet,
			strings.Repeat("a", 64), strings.Repeat("b", 64))
		assert.LessOrEqual(t, len(ref), 25)
	})
}

func TestPolicy_ProviderFor(t *testing.T) {
	policy := fulfillment.NewPolicy(map[string]string{
		"telecel": "datahubnet",
		"ignored": "something-else",
	}, nil)

	assert.Equal(t, entities.ProviderDatahubnet, policy.ProviderFor("telecel"))
	assert.Equal(t, entities.ProviderDatahubnet, policy.ProviderFor("Telecel"))
	assert.Equal(t, entities.ProviderHubnet, policy.ProviderFor("mtn"))
	assert.Equal(t, entities.ProviderHubnet, policy.ProviderFor("ignored"))
	assert.Equal(t, entities.ProviderHubnet, policy.ProviderFor(""))
}

func TestPolicy_HubnetNetworkFor(t *testing.T) {
	policy := fulfillment.NewPolicy(nil, map[string]string{
		"vodafone": "voda",
	})

	testCases := []struct {
		category    string
		wantNetwork string
		wantOK      bool
	}{
		{category: "mtn", wantNetwork: "mtn", wantOK: true},
		{category: "MTN", wantNetwork: "mtn", wantOK: true},
		{category: "airteltigo", wantNetwork: "at", wantOK: true},
		{category: "big-time", wantNetwork: "big-time", wantOK: true},
		{category: "at-bigtime", wantNetwork: "big-time", wantOK: true},
		{category: "vodafone", wantNetwork: "voda", wantOK: true},
		{category: "unknown-carrier", wantOK: false},
		{category: "", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run("category "+tc.category, func(t *testing.T) {
			network, ok := policy.HubnetNetworkFor(tc.category)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantNetwork, network)
		})
	}
}
