package gtfs

import "gtfsvalidator/internal/notice"

const RouteFile = "routes.txt"

const (
	DefaultRouteColor     = "FFFFFF"
	DefaultRouteTextColor = "000000"
)

type Route struct {
	RouteID        string
	AgencyID       string
	RouteShortName string
	RouteLongName  string
	RouteDesc      string
	RouteType      RouteType
	RouteURL       string
	RouteColor     string
	RouteTextColor string
	// RouteSortOrder is nil when the feed does not order routes.
	RouteSortOrder *int
}

func (r *Route) Key() string {
	return r.RouteID
}

type RouteBuilder struct {
	routeID        *string
	agencyID       *string
	routeShortName *string
	routeLongName  *string
	routeDesc      *string
	routeType      *int
	routeURL       *string
	routeColor     *string
	routeTextColor *string
	routeSortOrder *int
}

func NewRouteBuilder() *RouteBuilder {
	return &RouteBuilder{}
}

func (b *RouteBuilder) RouteID(v *string) *RouteBuilder { b.routeID = v; return b }
func (b *RouteBuilder) AgencyID(v *string) *RouteBuilder { b.agencyID = v; return b }
func (b *RouteBuilder) RouteShortName(v *string) *RouteBuilder { b.routeShortName = v; return b }
func (b *RouteBuilder) RouteLongName(v *string) *RouteBuilder { b.routeLongName = v; return b }
func (b *RouteBuilder) RouteDesc(v *string) *RouteBuilder { b.routeDesc = v; return b }
func (b *RouteBuilder) RouteType(v *int) *RouteBuilder { b.routeType = v; return b }
func (b *RouteBuilder) RouteURL(v *string) *RouteBuilder { b.routeURL = v; return b }
func (b *RouteBuilder) RouteColor(v *string) *RouteBuilder { b.routeColor = v; return b }
func (b *RouteBuilder) RouteTextColor(v *string) *RouteBuilder { b.routeTextColor = v; return b }
func (b *RouteBuilder) RouteSortOrder(v *int) *RouteBuilder { b.routeSortOrder = v; return b }

func (b *RouteBuilder) Clear() *RouteBuilder {
	*b = RouteBuilder{}
	return b
}

func (b *RouteBuilder) Build() BuildResult[Route] {
	c := newCheck(RouteFile, b.routeID)
	r := &Route{
		RouteID:        requireText(c, "route_id", b.routeID),
		AgencyID:       text(b.agencyID),
		RouteShortName: text(b.routeShortName),
		RouteLongName:  text(b.routeLongName),
		RouteDesc:      text(b.routeDesc),
		RouteType:      requiredEnum(c, "route_type", b.routeType, routeTypes),
		RouteURL:       text(b.routeURL),
		RouteColor:     DefaultRouteColor,
		RouteTextColor: DefaultRouteTextColor,
		RouteSortOrder: copyPtr(b.routeSortOrder),
	}
	if b.routeColor != nil && *b.routeColor != "" {
		r.RouteColor = *b.routeColor
	}
	if b.routeTextColor != nil && *b.routeTextColor != "" {
		r.RouteTextColor = *b.routeTextColor
	}
	if r.RouteShortName == "" && r.RouteLongName == "" {
		c.add(notice.MissingConditionalFields(RouteFile, "route_short_name", "route_long_name", c.entityID))
	}

	if c.failed() {
		return Failure[Route](c.notices...)
	}
	return Success(r)
}
