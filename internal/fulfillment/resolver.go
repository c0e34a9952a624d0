package fulfillment

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ghbundles/fulfillment-service/internal/entities"
)

// Bundle sizes are not stored on products; they are encoded in display names
// like "MTN 5GB Data Bundle". The resolver digs them out of the name+slug
// text. Hubnet wants megabytes, DataHubnet wants whole gigabytes
// ("capacity"), so both readings exist side by side.

var (
	gbPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*gb`)
	mbPattern = regexp.MustCompile(`(?i)(\d+)\s*mb`)
)

// ParseVolumeMB extracts the bundle size in megabytes from a product's name
// and slug. Returns false when no size is present; callers must treat that as
// a permanent failure, not something a retry can fix.
func ParseVolumeMB(name, slug string) (int, bool) {
	hay := name + " " + slug

	if m := gbPattern.FindStringSubmatch(hay); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err == nil && n > 0 {
			return int(math.Round(n * 1000)), true
		}
	}

	if m := mbPattern.FindStringSubmatch(hay); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n > 0 {
			return n, true
		}
	}

	return 0, false
}

// ParseCapacityGB extracts the bundle size in whole gigabytes. An MB-labelled
// bundle only yields a capacity when it divides evenly into gigabytes.
func ParseCapacityGB(name, slug string) (int, bool) {
	hay := name + " " + slug

	if m := gbPattern.FindStringSubmatch(hay); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err == nil && n > 0 {
			return int(math.Round(n)), true
		}
	}

	if m := mbPattern.FindStringSubmatch(hay); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n > 0 && n%1000 == 0 {
			return n / 1000, true
		}
	}

	return 0, false
}

// ResolveCapacity picks the DataHubnet capacity for a product. Overrides win
// over parsing: first by product slug, then by resolved volume, then whatever
// the name yields.
func ResolveCapacity(p entities.Product, volumeMB int, overrides map[string]int) (int, bool) {
	if p.Slug != "" {
		if n, ok := overrides[p.Slug]; ok && n > 0 {
			return n, true
		}
	}
	if volumeMB > 0 {
		if n, ok := overrides[strconv.Itoa(volumeMB)]; ok && n > 0 {
			return n, true
		}
	}
	return ParseCapacityGB(p.Name, p.Slug)
}

var nonAlnum = regexp.MustCompile(`[^0-9A-Za-z]+`)

const maxReferenceLen = 25

// BuildReference derives the idempotency reference a reseller sees for one
// item. It is generated once at queue time and reused on every retry, which
// is what makes resubmission and webhook correlation safe. Kept under the
// 25-character reseller limit.
func BuildReference(p entities.Provider, orderID, itemID string) string {
	prefix := "HN"
	if p == entities.ProviderDatahubnet {
		prefix = "DH"
	}

	o := nonAlnum.ReplaceAllString(orderID, "")
	i := nonAlnum.ReplaceAllString(itemID, "")
	ref := strings.ToUpper(prefix + "-" + tail(o, 8) + "-" + tail(i, 6))
	if len(ref) > maxReferenceLen {
		ref = ref[:maxReferenceLen]
	}
	return ref
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// Policy routes a product category to a provider and, for hubnet, to the
// network code the provider expects.
type Policy struct {
	providerMap map[string]string
	networkMap  map[string]string
}

func NewPolicy(providerMap, networkMap map[string]string) Policy {
	return Policy{providerMap: providerMap, networkMap: networkMap}
}

// ProviderFor returns the reseller handling a category. Unlisted categories
// go to hubnet, the primary provider.
func (p Policy) ProviderFor(categorySlug string) entities.Provider {
	slug := strings.ToLower(categorySlug)
	if mapped, ok := p.providerMap[slug]; ok {
		if entities.Provider(strings.ToLower(mapped)) == entities.ProviderDatahubnet {
			return entities.ProviderDatahubnet
		}
	}
	return entities.ProviderHubnet
}

// HubnetNetworkFor maps a category slug to hubnet's network code. Known
// carriers are built in; the config map extends them. No mapping means the
// item is not deliverable through hubnet at all ("skip", not "failed").
func (p Policy) HubnetNetworkFor(categorySlug string) (string, bool) {
	slug := strings.ToLower(categorySlug)
	switch slug {
	case "mtn":
		return "mtn", true
	case "airteltigo":
		return "at", true
	case "big-time", "at-bigtime":
		return "big-time", true
	}
	if network, ok := p.networkMap[slug]; ok && network != "" {
		return network, true
	}
	return "", false
}
