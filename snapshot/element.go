package snapshot

// Element is one bar of an array visualization.
type Element struct {
	Value  int
	Status Status
}

// ArrayPublisher receives a copy of the working array after each step.
// The slice is owned by the receiver.
type ArrayPublisher func([]Element)

// NewElements wraps values as default-status elements.
func NewElements(values []int) []Element {
	out := make([]Element, len(values))
	for i, v := range values {
		out[i] = Element{Value: v, Status: Default}
	}

	return out
}

// CloneElements returns an independent copy of arr.
func CloneElements(arr []Element) []Element {
	if arr == nil {
		return nil
	}
	out := make([]Element, len(arr))
	copy(out, arr)

	return out
}

// Values projects the element values.
func Values(arr []Element) []int {
	out := make([]int, len(arr))
	for i, e := range arr {
		out[i] = e.Value
	}

	return out
}

// ResetStatuses sets every element back to Default in place.
func ResetStatuses(arr []Element) {
	for i := range arr {
		arr[i].Status = Default
	}
}

// Publish sends a copy of arr to pub; a nil publisher is a no-op.
func Publish(pub ArrayPublisher, arr []Element) {
	if pub != nil {
		pub(CloneElements(arr))
	}
}
