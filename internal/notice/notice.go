package notice

// LocationSeparator joins row and column ids in a location key.
const LocationSeparator = ";"

// Notice is one recorded message. Fields are unexported so a Notice cannot
// change after construction.
type Notice struct {
	text     string
	critical bool
	style    Style
	location string
}

// New constructs a Notice. An empty location means unlocated.
func New(text string, critical bool, style Style, location string) Notice {
	return Notice{
		text:     text,
		critical: critical,
		style:    style,
		location: location,
	}
}

// LocationKey builds the composite "rowID;columnID" key.
func LocationKey(rowID, columnID string) string {
	return rowID + LocationSeparator + columnID
}

func (n Notice) Text() string { return n.text }
func (n Notice) Critical() bool { return n.critical }
func (n Notice) Style() Style { return n.style }
func (n Notice) Location() string { return n.location }

// Located reports whether the notice is attached to a row/column.
func (n Notice) Located() bool { return n.location != "" }
