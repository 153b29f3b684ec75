package types

// Status is the only value the host ever sees from the plugin's main entry
// point. The numeric values are fixed by the C API and must not change.
type Status int

const (
	StatOK                    Status = 0
	StatFailed                Status = 1
	StatErrFatal              Status = 2
	StatErrUnknown            Status = 3
	StatErrMissingHostFeature Status = 4
	StatErrUnsupported        Status = 5
	StatErrExists             Status = 6
	StatErrFormat             Status = 7
	StatErrMemory             Status = 8
	StatErrBadHandle          Status = 9
	StatErrBadIndex           Status = 10
	StatErrValue              Status = 11
	StatReplyYes              Status = 12
	StatReplyNo               Status = 13
	StatReplyDefault          Status = 14
	StatErrImageFormat        Status = 1000
)

var statusNames = map[Status]string{
	StatOK:                    "kOfxStatOK",
	StatFailed:                "kOfxStatFailed",
	StatErrFatal:              "kOfxStatErrFatal",
	StatErrUnknown:            "kOfxStatErrUnknown",
	StatErrMissingHostFeature: "kOfxStatErrMissingHostFeature",
	StatErrUnsupported:        "kOfxStatErrUnsupported",
	StatErrExists:             "kOfxStatErrExists",
	StatErrFormat:             "kOfxStatErrFormat",
	StatErrMemory:             "kOfxStatErrMemory",
	StatErrBadHandle:          "kOfxStatErrBadHandle",
	StatErrBadIndex:           "kOfxStatErrBadIndex",
	StatErrValue:              "kOfxStatErrValue",
	StatReplyYes:              "kOfxStatReplyYes",
	StatReplyNo:               "kOfxStatReplyNo",
	StatReplyDefault:          "kOfxStatReplyDefault",
	StatErrImageFormat:        "kOfxStatErrImageFormat",
}

// String returns the C API name of the status
func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}

	return "UNKNOWN STATUS CODE"
}

// IsError returns true when the status is neither success nor one of the
// reply codes
func (s Status) IsError() bool {
	switch s {
	case StatOK, StatReplyYes, StatReplyNo, StatReplyDefault:
		return false
	}

	return true
}
