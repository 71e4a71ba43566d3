package gtfs

import "time"

const FeedInfoFile = "feed_info.txt"

type FeedInfo struct {
	FeedPublisherName string
	FeedPublisherURL  string
	FeedLang          string
	DefaultLang       string
	FeedStartDate     *time.Time
	FeedEndDate       *time.Time
	FeedVersion       string
	FeedContactEmail  string
	FeedContactURL    string
}

// Key is the publisher name; a feed has a single feed_info row.
func (f *FeedInfo) Key() string {
	return f.FeedPublisherName
}

type FeedInfoBuilder struct {
	feedPublisherName *string
	feedPublisherURL  *string
	feedLang          *string
	defaultLang       *string
	feedStartDate     *time.Time
	feedEndDate       *time.Time
	feedVersion       *string
	feedContactEmail  *string
	feedContactURL    *string
}

func NewFeedInfoBuilder() *FeedInfoBuilder {
	return &FeedInfoBuilder{}
}

func (b *FeedInfoBuilder) FeedPublisherName(v *string) *FeedInfoBuilder {
	b.feedPublisherName = v
	return b
}

func (b *FeedInfoBuilder) FeedPublisherURL(v *string) *FeedInfoBuilder {
	b.feedPublisherURL = v
	return b
}

func (b *FeedInfoBuilder) FeedLang(v *string) *FeedInfoBuilder { b.feedLang = v; return b }
func (b *FeedInfoBuilder) DefaultLang(v *string) *FeedInfoBuilder { b.defaultLang = v; return b }
func (b *FeedInfoBuilder) FeedStartDate(v *time.Time) *FeedInfoBuilder { b.feedStartDate = v; return b }
func (b *FeedInfoBuilder) FeedEndDate(v *time.Time) *FeedInfoBuilder { b.feedEndDate = v; return b }
func (b *FeedInfoBuilder) FeedVersion(v *string) *FeedInfoBuilder { b.feedVersion = v; return b }
func (b *FeedInfoBuilder) FeedContactEmail(v *string) *FeedInfoBuilder { b.feedContactEmail = v; return b }
func (b *FeedInfoBuilder) FeedContactURL(v *string) *FeedInfoBuilder { b.feedContactURL = v; return b }

func (b *FeedInfoBuilder) Clear() *FeedInfoBuilder {
	*b = FeedInfoBuilder{}
	return b
}

func (b *FeedInfoBuilder) Build() BuildResult[FeedInfo] {
	c := newCheck(FeedInfoFile, b.feedPublisherName)
	f := &FeedInfo{
		FeedPublisherName: requireText(c, "feed_publisher_name", b.feedPublisherName),
		FeedPublisherURL:  requireText(c, "feed_publisher_url", b.feedPublisherURL),
		FeedLang:          requireText(c, "feed_lang", b.feedLang),
		DefaultLang:       text(b.defaultLang),
		FeedStartDate:     copyPtr(b.feedStartDate),
		FeedEndDate:       copyPtr(b.feedEndDate),
		FeedVersion:       text(b.feedVersion),
		FeedContactEmail:  text(b.feedContactEmail),
		FeedContactURL:    text(b.feedContactURL),
	}
	checkDateRange(c, "feed_start_date", "feed_end_date", b.feedStartDate, b.feedEndDate)

	if c.failed() {
		return Failure[FeedInfo](c.notices...)
	}
	return Success(f)
}
