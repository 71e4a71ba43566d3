package gtfs

import "gtfsvalidator/internal/notice"

// BuildResult holds either a built entity or the notices explaining why the
// row could not become one. Never both, never neither.
type BuildResult[T any] struct {
	entity  *T
	notices []notice.Notice
}

func Success[T any](entity *T) BuildResult[T] {
	if entity == nil {
		panic("gtfs: Success called with a nil entity")
	}
	return BuildResult[T]{entity: entity}
}

// Failure wraps the notices of a rejected row. An empty list is a
// programming error.
func Failure[T any](notices ...notice.Notice) BuildResult[T] {
	if len(notices) == 0 {
		panic("gtfs: Failure called without notices")
	}
	return BuildResult[T]{notices: notices}
}

func (r BuildResult[T]) IsSuccess() bool {
	return r.entity != nil
}

// Entity is nil for a failed build.
func (r BuildResult[T]) Entity() *T {
	return r.entity
}

// Notices is empty for a successful build.
func (r BuildResult[T]) Notices() []notice.Notice {
	return r.notices
}
