package stabilizer

// Stabilization constants shared by the default rule table.
const (
	// DummyCount replaces every numeric counter value.
	DummyCount = 1

	// DomandBidCookieName is the session cookie whose value is a signed
	// token that changes on every capture.
	DomandBidCookieName = "domand_bid"

	// DummyTimestamp replaces server-side timestamps.
	DummyTimestamp = "2025-01-01T00:00:00+09:00"

	// DummyJWT replaces JWT-like signed key fields.
	DummyJWT = "dummy.jwt.token.for.testing"

	// DummyDescription replaces free-form description text.
	DummyDescription = "This is a dummy description for testing purposes."

	// NoThumbnailURL is the service's own placeholder thumbnail.
	NoThumbnailURL = "https://resource.video.nimg.jp/web/img/series/no_thumbnail.png"
)

// defaultRules is the centralized field stabilization table. Order matters:
// rules are evaluated top to bottom and the first match wins.
var defaultRules = []Rule{
	// Exact matches
	{Pattern: "searchId", Replacement: "dummy-search-id-for-testing"},
	{Pattern: "lastViewedAt", Replacement: DummyTimestamp},
	{Pattern: "serverTime", Replacement: DummyTimestamp},
	{Pattern: "registeredAt", Replacement: DummyTimestamp},
	{Pattern: "nicosid", Replacement: "dummy_nicosid_for_testing"},
	{Pattern: "watchTrackId", Replacement: "dummy_track_id_for_testing"},
	{Pattern: "isPeakTime", Replacement: false},
	{Pattern: "isNicodicArticleExists", Replacement: false},
	{Pattern: "thumbnailUrl", Replacement: NoThumbnailURL},
	{Pattern: "playbackPosition", Replacement: 0.0},
	{Pattern: "hls_url", Replacement: "https://dummy.hls.url/for/testing"},
	{Pattern: DomandBidCookieName, Replacement: "dummy_domand_bid_for_testing"},
	{Pattern: "hls_playlist_text", Replacement: "dummy_hls_playlist_text_for_testing"},
	{Pattern: "threadKey", Replacement: DummyJWT},
	{Pattern: "accessRightKey", Replacement: DummyJWT},
	{Pattern: "editKey", Replacement: DummyJWT},
	{Pattern: "views", Replacement: DummyCount},
	// Path / partial-path matches
	// The service frequently changes promotional banner info under
	// waku.information. The payload carries no test-relevant signal and
	// causes noisy fixture churn, so the whole subtree is discarded.
	{Pattern: "waku.information", Replacement: nil, Mode: MatchSubstring},
	// Partial matches
	{Pattern: "description", Replacement: DummyDescription, Mode: MatchSubstring},
}

// DefaultRules returns a copy of the built-in stabilization rule table.
// The returned slice may be modified or extended by the caller without
// affecting the table used by a zero-configured Stabilizer.
func DefaultRules() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}
