package model

// ResourceKind identifies which purchasable collection a resource belongs to.
type ResourceKind string

const (
	ResourceKindCourse     ResourceKind = "course"
	ResourceKindTestSeries ResourceKind = "testSeries"
	ResourceKindLiveClass  ResourceKind = "liveClass"
	ResourceKindWebinar    ResourceKind = "webinar"
)

// KnownResourceKinds lists every kind the payment flow can sell.
var KnownResourceKinds = []ResourceKind{
	ResourceKindCourse,
	ResourceKindTestSeries,
	ResourceKindLiveClass,
	ResourceKindWebinar,
}

// Valid reports whether k is one of the known kinds.
func (k ResourceKind) Valid() bool {
	switch k {
	case ResourceKindCourse, ResourceKindTestSeries, ResourceKindLiveClass, ResourceKindWebinar:
		return true
	}
	return false
}
