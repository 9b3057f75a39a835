package domain

// DisplayContext describes the storefront request asking for a display to
// be recorded or decided. The HTTP layer constructs this struct from the
// request body and headers and passes it into the usecase.
type DisplayContext struct {
	VisitorID  string
	SessionID  string
	PageURL    string
	Referrer   string
	UserAgent  string
	IPAddress  string
	DeviceType string
	Metadata   map[string]string
}
