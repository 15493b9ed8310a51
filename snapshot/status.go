package snapshot

// Status is a visualization tag. Only Wall and Weight influence algorithms;
// every other value is presentational.
type Status string

// Status values used across runners.
const (
	Default    Status = "default"
	Wall       Status = "wall"
	Weight     Status = "weight"
	Visited    Status = "visited"
	Processing Status = "processing"
	Path       Status = "path"
	Start      Status = "start"
	Target     Status = "target"
	Comparing  Status = "comparing"
	Swapping   Status = "swapping"
	Sorted     Status = "sorted"
	Pivot      Status = "pivot"
	Found      Status = "found"
	Discarded  Status = "discarded"
	Completed  Status = "completed"
	Traversing Status = "traversing"
	Faded      Status = "faded"
)

// Terrain reports whether s is a terrain tag that survives a run reset.
func (s Status) Terrain() bool { return s == Wall || s == Weight }

// String implements fmt.Stringer.
func (s Status) String() string {
	if s == "" {
		return string(Default)
	}
	return string(s)
}
