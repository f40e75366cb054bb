package valueobjects

type Resource string

const (
	ResourceComplaint Resource = "complaint"
	ResourceTeam      Resource = "team"
)

func (r Resource) String() string {
	return string(r)
}
