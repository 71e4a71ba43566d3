package gtfs

import (
	"strconv"

	"gtfsvalidator/internal/notice"
)

const (
	PathwayFile = "pathways.txt"
	LevelFile   = "levels.txt"
)

// Pathway links two locations inside a station.
type Pathway struct {
	PathwayID            string
	FromStopID           string
	ToStopID             string
	PathwayMode          PathwayMode
	IsBidirectional      bool
	Length               *float64
	TraversalTime        *int
	StairCount           *int
	MaxSlope             *float64
	MinWidth             *float64
	SignpostedAs         string
	ReversedSignpostedAs string
}

func (p *Pathway) Key() string {
	return p.PathwayID
}

type PathwayBuilder struct {
	pathwayID            *string
	fromStopID           *string
	toStopID             *string
	pathwayMode          *int
	isBidirectional      *int
	length               *float64
	traversalTime        *int
	stairCount           *int
	maxSlope             *float64
	minWidth             *float64
	signpostedAs         *string
	reversedSignpostedAs *string
}

func NewPathwayBuilder() *PathwayBuilder {
	return &PathwayBuilder{}
}

func (b *PathwayBuilder) PathwayID(v *string) *PathwayBuilder { b.pathwayID = v; return b }
func (b *PathwayBuilder) FromStopID(v *string) *PathwayBuilder { b.fromStopID = v; return b }
func (b *PathwayBuilder) ToStopID(v *string) *PathwayBuilder { b.toStopID = v; return b }
func (b *PathwayBuilder) PathwayMode(v *int) *PathwayBuilder { b.pathwayMode = v; return b }
func (b *PathwayBuilder) IsBidirectional(v *int) *PathwayBuilder { b.isBidirectional = v; return b }
func (b *PathwayBuilder) Length(v *float64) *PathwayBuilder { b.length = v; return b }
func (b *PathwayBuilder) TraversalTime(v *int) *PathwayBuilder { b.traversalTime = v; return b }
func (b *PathwayBuilder) StairCount(v *int) *PathwayBuilder { b.stairCount = v; return b }
func (b *PathwayBuilder) MaxSlope(v *float64) *PathwayBuilder { b.maxSlope = v; return b }
func (b *PathwayBuilder) MinWidth(v *float64) *PathwayBuilder { b.minWidth = v; return b }
func (b *PathwayBuilder) SignpostedAs(v *string) *PathwayBuilder { b.signpostedAs = v; return b }
func (b *PathwayBuilder) ReversedSignpostedAs(v *string) *PathwayBuilder {
	b.reversedSignpostedAs = v
	return b
}

func (b *PathwayBuilder) Clear() *PathwayBuilder {
	*b = PathwayBuilder{}
	return b
}

func (b *PathwayBuilder) Build() BuildResult[Pathway] {
	c := newCheck(PathwayFile, b.pathwayID)
	p := &Pathway{
		PathwayID:            requireText(c, "pathway_id", b.pathwayID),
		FromStopID:           requireText(c, "from_stop_id", b.fromStopID),
		ToStopID:             requireText(c, "to_stop_id", b.toStopID),
		PathwayMode:          requiredEnum(c, "pathway_mode", b.pathwayMode, pathwayModes),
		IsBidirectional:      requiredEnum(c, "is_bidirectional", b.isBidirectional, binaries) == 1,
		Length:               copyPtr(b.length),
		TraversalTime:        copyPtr(b.traversalTime),
		StairCount:           copyPtr(b.stairCount),
		MaxSlope:             copyPtr(b.maxSlope),
		MinWidth:             copyPtr(b.minWidth),
		SignpostedAs:         text(b.signpostedAs),
		ReversedSignpostedAs: text(b.reversedSignpostedAs),
	}
	if p.PathwayMode == PathwayExitGate && p.IsBidirectional {
		c.add(notice.ForbiddenField(PathwayFile, "is_bidirectional", c.entityID,
			"as 1 when pathway_mode is "+strconv.Itoa(int(PathwayExitGate))))
	}
	if c.failed() {
		return Failure[Pathway](c.notices...)
	}
	return Success(p)
}

// Level is a floor of a station.
type Level struct {
	LevelID    string
	LevelIndex float64
	LevelName  string
}

func (l *Level) Key() string {
	return l.LevelID
}

type LevelBuilder struct {
	levelID    *string
	levelIndex *float64
	levelName  *string
}

func NewLevelBuilder() *LevelBuilder {
	return &LevelBuilder{}
}

func (b *LevelBuilder) LevelID(v *string) *LevelBuilder { b.levelID = v; return b }
func (b *LevelBuilder) LevelIndex(v *float64) *LevelBuilder { b.levelIndex = v; return b }
func (b *LevelBuilder) LevelName(v *string) *LevelBuilder { b.levelName = v; return b }

func (b *LevelBuilder) Clear() *LevelBuilder {
	*b = LevelBuilder{}
	return b
}

func (b *LevelBuilder) Build() BuildResult[Level] {
	c := newCheck(LevelFile, b.levelID)
	l := &Level{
		LevelID:    requireText(c, "level_id", b.levelID),
		LevelIndex: requireValue(c, "level_index", b.levelIndex),
		LevelName:  text(b.levelName),
	}
	if c.failed() {
		return Failure[Level](c.notices...)
	}
	return Success(l)
}
