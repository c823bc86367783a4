package loading

// Mode is the kind of build a BuildContext belongs to.
type Mode int

const (
	Development Mode = iota
	Production
)

func (m Mode) String() string {
	if m == Production {
		return "production"
	}
	return "development"
}

// ModeFromCommand maps the host command to a Mode, only "build" is production.
func ModeFromCommand(command string) Mode {
	if command == "build" {
		return Production
	}
	return Development
}

// BuildContext is created once per build invocation by Plugin.Configure and
// passed to every transform of that invocation.
type BuildContext struct {
	Mode Mode
	// Root resolves relative cssPath and svg path options.
	Root string
}
