package output

// Tag names written in game headers.
const (
	EventTag       = "Event"
	SiteTag        = "Site"
	DateTag        = "Date"
	RoundTag       = "Round"
	WhiteTag       = "White"
	BlackTag       = "Black"
	ResultTag      = "Result"
	FENTag         = "FEN"
	PlyCountTag    = "PlyCount"
	TerminationTag = "Termination"
)

// SevenTagRoster contains the seven required tags in order.
var SevenTagRoster = []string{
	EventTag,
	SiteTag,
	DateTag,
	RoundTag,
	WhiteTag,
	BlackTag,
	ResultTag,
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}
