package gtfs

// RouteType is the kind of vehicle serving a route.
type RouteType int

const (
	RouteTypeLightRail  RouteType = 0
	RouteTypeSubway     RouteType = 1
	RouteTypeRail       RouteType = 2
	RouteTypeBus        RouteType = 3
	RouteTypeFerry      RouteType = 4
	RouteTypeCableTram  RouteType = 5
	RouteTypeAerialLift RouteType = 6
	RouteTypeFunicular  RouteType = 7
	RouteTypeTrolleybus RouteType = 11
	RouteTypeMonorail   RouteType = 12
)

var routeTypes = []RouteType{
	RouteTypeLightRail, RouteTypeSubway, RouteTypeRail, RouteTypeBus, RouteTypeFerry,
	RouteTypeCableTram, RouteTypeAerialLift, RouteTypeFunicular, RouteTypeTrolleybus, RouteTypeMonorail,
}

type LocationType int

const (
	LocationStopOrPlatform LocationType = iota
	LocationStation
	LocationEntranceOrExit
	LocationGenericNode
	LocationBoardingArea
)

var locationTypes = []LocationType{
	LocationStopOrPlatform, LocationStation, LocationEntranceOrExit, LocationGenericNode, LocationBoardingArea,
}

// Accessibility is shared by wheelchair_boarding, wheelchair_accessible and
// bikes_allowed. Absent means unknown.
type Accessibility int

const (
	AccessibilityUnknown Accessibility = iota
	AccessibilityAllowed
	AccessibilityNotAllowed
)

var accessibilities = []Accessibility{AccessibilityUnknown, AccessibilityAllowed, AccessibilityNotAllowed}

type DirectionID int

// DirectionUnspecified is used when direction_id is absent.
const (
	DirectionUnspecified DirectionID = -1
	DirectionOutbound    DirectionID = 0
	DirectionInbound     DirectionID = 1
)

var directionIDs = []DirectionID{DirectionOutbound, DirectionInbound}

// PickupType applies to both pickup_type and drop_off_type.
type PickupType int

const (
	PickupRegular PickupType = iota
	PickupNone
	PickupPhoneAgency
	PickupCoordinateWithDriver
)

var pickupTypes = []PickupType{PickupRegular, PickupNone, PickupPhoneAgency, PickupCoordinateWithDriver}

type Timepoint int

const (
	TimepointApproximate Timepoint = 0
	TimepointExact       Timepoint = 1
)

var timepoints = []Timepoint{TimepointApproximate, TimepointExact}

type ExceptionType int

const (
	ServiceAdded   ExceptionType = 1
	ServiceRemoved ExceptionType = 2
)

var exceptionTypes = []ExceptionType{ServiceAdded, ServiceRemoved}

type TransferType int

const (
	TransferRecommended TransferType = iota
	TransferTimed
	TransferMinimumTime
	TransferNotPossible
)

var transferTypes = []TransferType{TransferRecommended, TransferTimed, TransferMinimumTime, TransferNotPossible}

type PathwayMode int

const (
	PathwayWalkway        PathwayMode = 1
	PathwayStairs         PathwayMode = 2
	PathwayMovingSidewalk PathwayMode = 3
	PathwayEscalator      PathwayMode = 4
	PathwayElevator       PathwayMode = 5
	PathwayFareGate       PathwayMode = 6
	PathwayExitGate       PathwayMode = 7
)

var pathwayModes = []PathwayMode{
	PathwayWalkway, PathwayStairs, PathwayMovingSidewalk, PathwayEscalator,
	PathwayElevator, PathwayFareGate, PathwayExitGate,
}

type PaymentMethod int

const (
	PaymentOnBoard        PaymentMethod = 0
	PaymentBeforeBoarding PaymentMethod = 1
)

var paymentMethods = []PaymentMethod{PaymentOnBoard, PaymentBeforeBoarding}

// Transfers is the number of transfers a fare allows.
type Transfers int

// TransfersUnlimited is used when the transfers value is empty.
const (
	TransfersUnlimited Transfers = -1
	TransfersNone      Transfers = 0
	TransfersOnce      Transfers = 1
	TransfersTwice     Transfers = 2
)

var transferCounts = []Transfers{TransfersNone, TransfersOnce, TransfersTwice}

type ExactTimes int

const (
	FrequencyBased ExactTimes = 0
	ScheduleBased  ExactTimes = 1
)

var exactTimes = []ExactTimes{FrequencyBased, ScheduleBased}

// binary covers 0/1 columns such as calendar weekdays and is_bidirectional.
type binary int

var binaries = []binary{0, 1}
