package call

// ===============================
// Call Status
// ===============================

type Status string

const (
	StatusConnected    Status = "connected"
	StatusNotConnected Status = "not_connected"
	StatusVoicemail    Status = "voicemail"
	StatusBusy         Status = "busy"
)

func (s Status) Valid() bool {
	switch s {
	case StatusConnected, StatusNotConnected, StatusVoicemail, StatusBusy:
		return true
	}
	return false
}
