package usecase

import "strings"

// botUASubstrings are lowercase needles matched against the user agent.
// The list covers the common crawlers and scripted clients seen hitting
// storefront endpoints; it does not try to be exhaustive.
var botUASubstrings = []string{
	"bot", "crawl", "spider", "slurp", "headless",
	"phantomjs", "lighthouse", "pingdom", "gtmetrix",
	"curl/", "wget/", "python-requests", "python-urllib", "scrapy",
	"go-http-client", "java/", "okhttp",
}

// BotFilter flags events unlikely to come from a real visitor so they can
// be excluded from analytics and abuse signals. Flagged events are still
// written to the durable log, never dropped.
type BotFilter struct {
	// MaxVelocity is the number of events from one IP within the velocity
	// window above which traffic is considered automated.
	MaxVelocity int64
}

func NewBotFilter(maxVelocity int64) *BotFilter {
	if maxVelocity <= 0 {
		maxVelocity = 30
	}
	return &BotFilter{MaxVelocity: maxVelocity}
}

// IsLikelyBot applies the heuristics in cheapest-first order: missing or
// implausibly short visitor ID, missing client address, known bot
// user-agent substrings, then the per-IP event velocity supplied by the
// caller.
func (f *BotFilter) IsLikelyBot(visitorID, ipAddress, userAgent string, velocity int64) bool {
	if len(visitorID) < 8 {
		return true
	}
	if ipAddress == "" || userAgent == "" {
		return true
	}
	ua := strings.ToLower(userAgent)
	for _, needle := range botUASubstrings {
		if strings.Contains(ua, needle) {
			return true
		}
	}
	return velocity > f.MaxVelocity
}
