package types

// Status is the lifecycle status of configuration entities
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) String() string {
	return string(s)
}
