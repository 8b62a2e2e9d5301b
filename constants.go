package turtle

// Mode selects the heading convention of a turtle.
type Mode int

const (
	// ModeStandard starts facing east; positive angles turn counterclockwise.
	ModeStandard Mode = iota
	// ModeLogo starts facing north; positive angles turn clockwise.
	ModeLogo
)

func (m Mode) String() string {
	if m == ModeLogo {
		return "logo"
	}
	return "standard"
}

// ParseMode maps "standard" or "logo" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "standard":
		return ModeStandard, nil
	case "logo":
		return ModeLogo, nil
	}
	return ModeStandard, argError("mode %q", s)
}

// ResizeMode controls how the turtle icon follows pen attributes.
type ResizeMode int

const (
	// ResizeAuto scales the icon with the pen size.
	ResizeAuto ResizeMode = iota
	// ResizeUser scales the icon by the stretch factor and outline width.
	ResizeUser
	// ResizeNone draws the shape as defined.
	ResizeNone
)

func (r ResizeMode) String() string {
	switch r {
	case ResizeUser:
		return "user"
	case ResizeNone:
		return "noresize"
	}
	return "auto"
}

// ParseResizeMode maps "auto", "user" or "noresize" to a ResizeMode.
func ParseResizeMode(s string) (ResizeMode, error) {
	switch s {
	case "auto":
		return ResizeAuto, nil
	case "user":
		return ResizeUser, nil
	case "noresize":
		return ResizeNone, nil
	}
	return ResizeAuto, argError("resize mode %q", s)
}

// Align anchors written text relative to the turtle position.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

const (
	// StandardDelay is the delay installed by tracer calls that give none.
	StandardDelay = 5
	// StartDelay is the delay of a fresh screen.
	StartDelay = 10

	// maxBatch is the longest open line batch before it is committed.
	maxBatch = 42

	defaultWidth  = 800
	defaultHeight = 600
	defaultTitle  = "Extended Turtle Graphics"
	defaultUndo   = 1000
)

// ActionType identifies an undoable turtle action.
type ActionType int

const (
	ActionMove ActionType = iota
	ActionRotate
	ActionPen
	ActionFill
	ActionDot
	ActionWrite
	ActionShape
)

func (a ActionType) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionRotate:
		return "rotate"
	case ActionPen:
		return "pen"
	case ActionFill:
		return "fill"
	case ActionDot:
		return "dot"
	case ActionWrite:
		return "write"
	case ActionShape:
		return "shape"
	}
	return "unknown"
}
